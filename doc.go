/*
Package emojis provides static access to the Unicode emoji catalog: lookup
of emojis by glyph or shortcode, iteration in Unicode recommended order,
iteration by group, and fuzzy search over emoji names.

Description

From the Unicode Consortium (UTS #51):

The emoji-test.txt file provides data for testing which emoji forms should
be in keyboards and which should also be displayed/processed. It lists all
emoji in the recommended order for keyboards and other pickers, grouped
into broad categories and subgroups.

Package emojis embeds this data, together with a set of shortcodes
(":rocket:") as used by chat and markup systems. The catalog is built
once, on first use, and is never modified afterwards. All functions of
this package may therefore be called from concurrent goroutines.

Usage

Looking up an emoji by glyph or by shortcode:

  e := emojis.Lookup("🤨")         // or "raised_eyebrow", or ":raised_eyebrow:"
  fmt.Println(e.Name())            // face with raised eyebrow

Iterating over a group:

  it := emojis.FoodAndDrink.Emojis()
  for it.Next() {
      fmt.Print(it.Emoji())
  }

Searching:

  m := emojis.Search("rket")
  for m.Next() {
      fmt.Println(m.Emoji(), m.Emoji().Name())
  }

Search results are delivered best match first. Matching is explained in
package fuzzy.

Skin Tones

Emojis supporting skin-tone modifiers have six variants: the default
(yellow) one and one for each of the five Fitzpatrick modifiers. Variants
may be looked up like any other emoji, but iteration and search yield the
default-tone emojis only. Use Emoji.SkinTones or Emoji.WithSkinTone to get
at the variants.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emojis

import (
	"github.com/npillmayer/schuko/tracing"
)

//go:generate go run ./internal/generator -v

// tracer traces with key 'emojis'.
func tracer() tracing.Trace {
	return tracing.Select("emojis")
}
