package main

import (
	"github.com/Nudelsuppe42/bte-games-extractor/bot"
)

func main() {
	bot.Start()
}
