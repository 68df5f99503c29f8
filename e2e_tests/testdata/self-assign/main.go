package main

import "fmt"

func main() {
	count := 3
	count = count
	if count > 1 || count > 1 {
		fmt.Println(count)
	}
}
