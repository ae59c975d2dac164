/*
Command emojis looks up and searches Unicode emojis on the command line.

Usage

  emojis lookup 🤨 :rocket: wave
  emojis search [--limit n] [--names-only] rket
  emojis list ["Food & Drink"]

Search options may also be given in a configuration file in NestedText
format:

  emojis:
    search:
      limit: 10
      shortcodes: true

  emojis --config emojis.nt search heart

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
