package main

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
	"github.com/urfave/cli/v2"
)

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "Generate base64 cookie keys for COOKIE_HASH_KEY and COOKIE_BLOCK_KEY",
	Action: func(c *cli.Context) error {
		fmt.Printf("COOKIE_HASH_KEY=%s\n", base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)))
		fmt.Printf("COOKIE_BLOCK_KEY=%s\n", base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)))
		return nil
	},
}
