package main

import "github.com/Okuromatsu/Sentinel-Drift/cmd"

func main() {
	cmd.Execute()
}
