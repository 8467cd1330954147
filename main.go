package main

import "group-chat-app/config"

func main() {
	config.RunServer()
}
