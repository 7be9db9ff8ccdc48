package main

import "wishlist-scraper/cmd/wishlist-cli/commands"

func main() {
	commands.Execute()
}
