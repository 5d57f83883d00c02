package main

import "github.com/webbfontaine/i18n-asset-pipeline/internal/cli"

func main() {
	cli.Execute()
}
