package emojis_test

import (
	"fmt"

	"github.com/npillmayer/emojis"
)

func ExampleLookup() {
	e := emojis.Lookup(":raised_eyebrow:")
	fmt.Println(e, e.Name(), e.Group())
	fmt.Println(emojis.Lookup("🤨") == e)
	// Output:
	// 🤨 face with raised eyebrow Smileys & Emotion
	// true
}

func ExampleGroup_Emojis() {
	it := emojis.FoodAndDrink.Emojis()
	for i := 0; i < 5 && it.Next(); i++ {
		fmt.Print(it.Emoji())
	}
	fmt.Println()
	// Output: 🍇🍈🍉🍊🍋
}

func ExampleSearch() {
	m := emojis.Search("rket")
	if m.Next() {
		fmt.Println(m.Emoji(), m.Emoji().Shortcode())
	}
	// Output: 🚀 rocket
}

func ExampleEmoji_WithSkinTone() {
	wave := emojis.Lookup("wave")
	fmt.Println(wave.WithSkinTone(emojis.ToneMedium).Name())
	// Output: waving hand: medium skin tone
}
