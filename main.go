package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Meertayyab/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
