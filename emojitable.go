package emojis

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"strconv"
)

// UnicodeEmojiVersion is the version of the Unicode emoji data the catalog
// has been generated from.
const UnicodeEmojiVersion = "15.1"

// Group is one of the emoji groups of the Unicode recommended ordering.
type Group int

// These are all the emoji groups, in recommended order.
const (
	SmileysAndEmotion Group = iota
	PeopleAndBody
	Component
	AnimalsAndNature
	FoodAndDrink
	TravelAndPlaces
	Activities
	Objects
	Symbols
	Flags
)

const _Group_name = "Smileys & EmotionPeople & BodyComponentAnimals & NatureFood & DrinkTravel & PlacesActivitiesObjectsSymbolsFlags"

var _Group_index = [...]uint16{0, 17, 30, 39, 55, 67, 82, 92, 99, 106, 111}

// String returns the Unicode name of a group, e.g. "Food & Drink".
func (g Group) String() string {
	if g < 0 || g >= Group(len(_Group_index)-1) {
		return "Group(" + strconv.FormatInt(int64(g), 10) + ")"
	}
	return _Group_name[_Group_index[g]:_Group_index[g+1]]
}

// emojiRecords holds all emojis, including skin-tone variants, in
// recommended order.
var emojiRecords = [...]record{
	{1, "\U0001f600", "grinning face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"grinning"}},
	{2, "\U0001f603", "grinning face with big eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"smiley"}},
	{3, "\U0001f604", "grinning face with smiling eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"smile"}},
	{4, "\U0001f601", "beaming face with smiling eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"grin"}},
	{5, "\U0001f606", "grinning squinting face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"laughing", "satisfied"}},
	{6, "\U0001f605", "grinning face with sweat", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sweat_smile"}},
	{7, "\U0001f923", "rolling on the floor laughing", SmileysAndEmotion, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"rofl"}},
	{8, "\U0001f602", "face with tears of joy", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"joy"}},
	{9, "\U0001f642", "slightly smiling face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"slightly_smiling_face"}},
	{10, "\U0001f643", "upside-down face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"upside_down_face"}},
	{11, "\U0001fae0", "melting face", SmileysAndEmotion, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"melting_face"}},
	{12, "\U0001f609", "winking face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"wink"}},
	{13, "\U0001f60a", "smiling face with smiling eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"blush"}},
	{14, "\U0001f607", "smiling face with halo", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"innocent"}},
	{15, "\U0001f970", "smiling face with hearts", SmileysAndEmotion, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"smiling_face_with_three_hearts"}},
	{16, "\U0001f60d", "smiling face with heart-eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"heart_eyes"}},
	{17, "\U0001f929", "star-struck", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"star_struck"}},
	{18, "\U0001f618", "face blowing a kiss", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"kissing_heart"}},
	{19, "\U0001f617", "kissing face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"kissing"}},
	{20, "\u263a\ufe0f", "smiling face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"relaxed"}},
	{21, "\U0001f61a", "kissing face with closed eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"kissing_closed_eyes"}},
	{22, "\U0001f619", "kissing face with smiling eyes", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"kissing_smiling_eyes"}},
	{23, "\U0001f972", "smiling face with tear", SmileysAndEmotion, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"smiling_face_with_tear"}},
	{24, "\U0001f60b", "face savoring food", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"yum"}},
	{25, "\U0001f61b", "face with tongue", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"stuck_out_tongue"}},
	{26, "\U0001f61c", "winking face with tongue", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"stuck_out_tongue_winking_eye"}},
	{27, "\U0001f92a", "zany face", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"zany_face"}},
	{28, "\U0001f61d", "squinting face with tongue", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"stuck_out_tongue_closed_eyes"}},
	{29, "\U0001f911", "money-mouth face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"money_mouth_face"}},
	{30, "\U0001f917", "smiling face with open hands", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"hugs"}},
	{31, "\U0001f92d", "face with hand over mouth", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"hand_over_mouth"}},
	{32, "\U0001fae2", "face with open eyes and hand over mouth", SmileysAndEmotion, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"face_with_open_eyes_and_hand_over_mouth"}},
	{33, "\U0001fae3", "face with peeking eye", SmileysAndEmotion, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"face_with_peeking_eye"}},
	{34, "\U0001f92b", "shushing face", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"shushing_face"}},
	{35, "\U0001f914", "thinking face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"thinking"}},
	{36, "\U0001fae1", "saluting face", SmileysAndEmotion, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"saluting_face"}},
	{37, "\U0001f910", "zipper-mouth face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"zipper_mouth_face"}},
	{38, "\U0001f928", "face with raised eyebrow", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"raised_eyebrow"}},
	{39, "\U0001f610", "neutral face", SmileysAndEmotion, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"neutral_face"}},
	{40, "\U0001f611", "expressionless face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"expressionless"}},
	{41, "\U0001f636", "face without mouth", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"no_mouth"}},
	{42, "\U0001fae5", "dotted line face", SmileysAndEmotion, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"dotted_line_face"}},
	{43, "\U0001f636\u200d\U0001f32b\ufe0f", "face in clouds", SmileysAndEmotion, UnicodeVersion{13, 1}, NoSkinTone, -1, []string{"face_in_clouds"}},
	{44, "\U0001f60f", "smirking face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"smirk"}},
	{45, "\U0001f612", "unamused face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"unamused"}},
	{46, "\U0001f644", "face with rolling eyes", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"roll_eyes"}},
	{47, "\U0001f62c", "grimacing face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"grimacing"}},
	{48, "\U0001f62e\u200d\U0001f4a8", "face exhaling", SmileysAndEmotion, UnicodeVersion{13, 1}, NoSkinTone, -1, []string{"face_exhaling"}},
	{49, "\U0001f925", "lying face", SmileysAndEmotion, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"lying_face"}},
	{50, "\U0001fae8", "shaking face", SmileysAndEmotion, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"shaking_face"}},
	{51, "\U0001f642\u200d\u2194\ufe0f", "head shaking horizontally", SmileysAndEmotion, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"head_shaking_horizontally"}},
	{52, "\U0001f642\u200d\u2195\ufe0f", "head shaking vertically", SmileysAndEmotion, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"head_shaking_vertically"}},
	{53, "\U0001f60c", "relieved face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"relieved"}},
	{54, "\U0001f614", "pensive face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pensive"}},
	{55, "\U0001f62a", "sleepy face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sleepy"}},
	{56, "\U0001f924", "drooling face", SmileysAndEmotion, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"drooling_face"}},
	{57, "\U0001f634", "sleeping face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"sleeping"}},
	{58, "\U0001f637", "face with medical mask", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"mask"}},
	{59, "\U0001f912", "face with thermometer", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"face_with_thermometer"}},
	{60, "\U0001f915", "face with head-bandage", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"face_with_head_bandage"}},
	{61, "\U0001f922", "nauseated face", SmileysAndEmotion, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"nauseated_face"}},
	{62, "\U0001f92e", "face vomiting", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"vomiting_face"}},
	{63, "\U0001f927", "sneezing face", SmileysAndEmotion, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"sneezing_face"}},
	{64, "\U0001f975", "hot face", SmileysAndEmotion, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"hot_face"}},
	{65, "\U0001f976", "cold face", SmileysAndEmotion, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"cold_face"}},
	{66, "\U0001f974", "woozy face", SmileysAndEmotion, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"woozy_face"}},
	{67, "\U0001f635", "face with crossed-out eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dizzy_face"}},
	{68, "\U0001f635\u200d\U0001f4ab", "face with spiral eyes", SmileysAndEmotion, UnicodeVersion{13, 1}, NoSkinTone, -1, []string{"face_with_spiral_eyes"}},
	{69, "\U0001f92f", "exploding head", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"exploding_head"}},
	{70, "\U0001f920", "cowboy hat face", SmileysAndEmotion, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"cowboy_hat_face"}},
	{71, "\U0001f973", "partying face", SmileysAndEmotion, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"partying_face"}},
	{72, "\U0001f978", "disguised face", SmileysAndEmotion, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"disguised_face"}},
	{73, "\U0001f60e", "smiling face with sunglasses", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"sunglasses"}},
	{74, "\U0001f913", "nerd face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"nerd_face"}},
	{75, "\U0001f9d0", "face with monocle", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"monocle_face"}},
	{76, "\U0001f615", "confused face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"confused"}},
	{77, "\U0001fae4", "face with diagonal mouth", SmileysAndEmotion, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"face_with_diagonal_mouth"}},
	{78, "\U0001f61f", "worried face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"worried"}},
	{79, "\U0001f641", "slightly frowning face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"slightly_frowning_face"}},
	{80, "\u2639\ufe0f", "frowning face", SmileysAndEmotion, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"frowning_face"}},
	{81, "\U0001f62e", "face with open mouth", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"open_mouth"}},
	{82, "\U0001f62f", "hushed face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"hushed"}},
	{83, "\U0001f632", "astonished face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"astonished"}},
	{84, "\U0001f633", "flushed face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"flushed"}},
	{85, "\U0001f97a", "pleading face", SmileysAndEmotion, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"pleading_face"}},
	{86, "\U0001f979", "face holding back tears", SmileysAndEmotion, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"face_holding_back_tears"}},
	{87, "\U0001f626", "frowning face with open mouth", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"frowning"}},
	{88, "\U0001f627", "anguished face", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"anguished"}},
	{89, "\U0001f628", "fearful face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fearful"}},
	{90, "\U0001f630", "anxious face with sweat", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cold_sweat"}},
	{91, "\U0001f625", "sad but relieved face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"disappointed_relieved"}},
	{92, "\U0001f622", "crying face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cry"}},
	{93, "\U0001f62d", "loudly crying face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sob"}},
	{94, "\U0001f631", "face screaming in fear", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"scream"}},
	{95, "\U0001f616", "confounded face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"confounded"}},
	{96, "\U0001f623", "persevering face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"persevere"}},
	{97, "\U0001f61e", "disappointed face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"disappointed"}},
	{98, "\U0001f613", "downcast face with sweat", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sweat"}},
	{99, "\U0001f629", "weary face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"weary"}},
	{100, "\U0001f62b", "tired face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tired_face"}},
	{101, "\U0001f971", "yawning face", SmileysAndEmotion, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"yawning_face"}},
	{102, "\U0001f624", "face with steam from nose", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"triumph"}},
	{103, "\U0001f621", "enraged face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"rage", "pout"}},
	{104, "\U0001f620", "angry face", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"angry"}},
	{105, "\U0001f92c", "face with symbols on mouth", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"cursing_face"}},
	{106, "\U0001f608", "smiling face with horns", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"smiling_imp"}},
	{107, "\U0001f47f", "angry face with horns", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"imp"}},
	{108, "\U0001f480", "skull", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"skull"}},
	{109, "\u2620\ufe0f", "skull and crossbones", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"skull_and_crossbones"}},
	{110, "\U0001f4a9", "pile of poo", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hankey", "poop", "shit"}},
	{111, "\U0001f921", "clown face", SmileysAndEmotion, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"clown_face"}},
	{112, "\U0001f479", "ogre", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_ogre"}},
	{113, "\U0001f47a", "goblin", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_goblin"}},
	{114, "\U0001f47b", "ghost", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ghost"}},
	{115, "\U0001f47d", "alien", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"alien"}},
	{116, "\U0001f47e", "alien monster", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"space_invader"}},
	{117, "\U0001f916", "robot", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"robot"}},
	{118, "\U0001f63a", "grinning cat", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"smiley_cat"}},
	{119, "\U0001f638", "grinning cat with smiling eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"grinning_cat_with_smiling_eyes"}},
	{120, "\U0001f639", "cat with tears of joy", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cat_with_tears_of_joy"}},
	{121, "\U0001f63b", "smiling cat with heart-eyes", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"smiling_cat_with_heart_eyes"}},
	{122, "\U0001f63c", "cat with wry smile", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cat_with_wry_smile"}},
	{123, "\U0001f63d", "kissing cat", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"kissing_cat"}},
	{124, "\U0001f640", "weary cat", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"weary_cat"}},
	{125, "\U0001f63f", "crying cat", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"crying_cat"}},
	{126, "\U0001f63e", "pouting cat", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pouting_cat"}},
	{127, "\U0001f648", "see-no-evil monkey", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"see_no_evil_monkey"}},
	{128, "\U0001f649", "hear-no-evil monkey", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hear_no_evil_monkey"}},
	{129, "\U0001f64a", "speak-no-evil monkey", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"speak_no_evil_monkey"}},
	{130, "\U0001f48c", "love letter", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"love_letter"}},
	{131, "\U0001f498", "heart with arrow", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cupid"}},
	{132, "\U0001f49d", "heart with ribbon", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"heart_with_ribbon"}},
	{133, "\U0001f496", "sparkling heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sparkling_heart"}},
	{134, "\U0001f497", "growing heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"growing_heart"}},
	{135, "\U0001f493", "beating heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"beating_heart"}},
	{136, "\U0001f49e", "revolving hearts", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"revolving_hearts"}},
	{137, "\U0001f495", "two hearts", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"two_hearts"}},
	{138, "\U0001f49f", "heart decoration", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"heart_decoration"}},
	{139, "\u2763\ufe0f", "heart exclamation", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"heart_exclamation"}},
	{140, "\U0001f494", "broken heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"broken_heart"}},
	{141, "\u2764\ufe0f\u200d\U0001f525", "heart on fire", SmileysAndEmotion, UnicodeVersion{13, 1}, NoSkinTone, -1, []string{"heart_on_fire"}},
	{142, "\u2764\ufe0f\u200d\U0001fa79", "mending heart", SmileysAndEmotion, UnicodeVersion{13, 1}, NoSkinTone, -1, []string{"mending_heart"}},
	{143, "\u2764\ufe0f", "red heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"heart"}},
	{144, "\U0001fa77", "pink heart", SmileysAndEmotion, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"pink_heart"}},
	{145, "\U0001f9e1", "orange heart", SmileysAndEmotion, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"orange_heart"}},
	{146, "\U0001f49b", "yellow heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"yellow_heart"}},
	{147, "\U0001f49a", "green heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"green_heart"}},
	{148, "\U0001f499", "blue heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"blue_heart"}},
	{149, "\U0001fa75", "light blue heart", SmileysAndEmotion, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"light_blue_heart"}},
	{150, "\U0001f49c", "purple heart", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"purple_heart"}},
	{151, "\U0001f90e", "brown heart", SmileysAndEmotion, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"brown_heart"}},
	{152, "\U0001f5a4", "black heart", SmileysAndEmotion, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"black_heart"}},
	{153, "\U0001fa76", "grey heart", SmileysAndEmotion, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"grey_heart"}},
	{154, "\U0001f90d", "white heart", SmileysAndEmotion, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"white_heart"}},
	{155, "\U0001f48b", "kiss mark", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"kiss_mark"}},
	{156, "\U0001f4af", "hundred points", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"100"}},
	{157, "\U0001f4a2", "anger symbol", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"anger_symbol"}},
	{158, "\U0001f4a5", "collision", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"boom", "collision"}},
	{159, "\U0001f4ab", "dizzy", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dizzy"}},
	{160, "\U0001f4a6", "sweat droplets", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sweat_droplets"}},
	{161, "\U0001f4a8", "dashing away", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dashing_away"}},
	{162, "\U0001f573\ufe0f", "hole", SmileysAndEmotion, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"hole"}},
	{163, "\U0001f4ac", "speech balloon", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"speech_balloon"}},
	{164, "\U0001f441\ufe0f\u200d\U0001f5e8\ufe0f", "eye in speech bubble", SmileysAndEmotion, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"eye_in_speech_bubble"}},
	{165, "\U0001f5e8\ufe0f", "left speech bubble", SmileysAndEmotion, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"left_speech_bubble"}},
	{166, "\U0001f5ef\ufe0f", "right anger bubble", SmileysAndEmotion, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"right_anger_bubble"}},
	{167, "\U0001f4ad", "thought balloon", SmileysAndEmotion, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"thought_balloon"}},
	{168, "\U0001f4a4", "ZZZ", SmileysAndEmotion, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"zzz"}},
	{169, "\U0001f44b", "waving hand", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"wave"}},
	{170, "\U0001f44b\U0001f3fb", "waving hand: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 168, nil},
	{171, "\U0001f44b\U0001f3fc", "waving hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 168, nil},
	{172, "\U0001f44b\U0001f3fd", "waving hand: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 168, nil},
	{173, "\U0001f44b\U0001f3fe", "waving hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 168, nil},
	{174, "\U0001f44b\U0001f3ff", "waving hand: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 168, nil},
	{175, "\U0001f91a", "raised back of hand", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"raised_back_of_hand"}},
	{176, "\U0001f91a\U0001f3fb", "raised back of hand: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 174, nil},
	{177, "\U0001f91a\U0001f3fc", "raised back of hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 174, nil},
	{178, "\U0001f91a\U0001f3fd", "raised back of hand: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 174, nil},
	{179, "\U0001f91a\U0001f3fe", "raised back of hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 174, nil},
	{180, "\U0001f91a\U0001f3ff", "raised back of hand: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 174, nil},
	{181, "\U0001f590\ufe0f", "hand with fingers splayed", PeopleAndBody, UnicodeVersion{0, 7}, ToneDefault, -1, []string{"hand_with_fingers_splayed"}},
	{182, "\U0001f590\U0001f3fb", "hand with fingers splayed: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 180, nil},
	{183, "\U0001f590\U0001f3fc", "hand with fingers splayed: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 180, nil},
	{184, "\U0001f590\U0001f3fd", "hand with fingers splayed: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 180, nil},
	{185, "\U0001f590\U0001f3fe", "hand with fingers splayed: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 180, nil},
	{186, "\U0001f590\U0001f3ff", "hand with fingers splayed: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 180, nil},
	{187, "\u270b", "raised hand", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"hand", "raised_hand"}},
	{188, "\u270b\U0001f3fb", "raised hand: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 186, nil},
	{189, "\u270b\U0001f3fc", "raised hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 186, nil},
	{190, "\u270b\U0001f3fd", "raised hand: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 186, nil},
	{191, "\u270b\U0001f3fe", "raised hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 186, nil},
	{192, "\u270b\U0001f3ff", "raised hand: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 186, nil},
	{193, "\U0001f596", "vulcan salute", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"vulcan_salute"}},
	{194, "\U0001f596\U0001f3fb", "vulcan salute: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 192, nil},
	{195, "\U0001f596\U0001f3fc", "vulcan salute: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 192, nil},
	{196, "\U0001f596\U0001f3fd", "vulcan salute: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 192, nil},
	{197, "\U0001f596\U0001f3fe", "vulcan salute: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 192, nil},
	{198, "\U0001f596\U0001f3ff", "vulcan salute: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 192, nil},
	{199, "\U0001faf1", "rightwards hand", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"rightwards_hand"}},
	{200, "\U0001faf1\U0001f3fb", "rightwards hand: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 198, nil},
	{201, "\U0001faf1\U0001f3fc", "rightwards hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 198, nil},
	{202, "\U0001faf1\U0001f3fd", "rightwards hand: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 198, nil},
	{203, "\U0001faf1\U0001f3fe", "rightwards hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 198, nil},
	{204, "\U0001faf1\U0001f3ff", "rightwards hand: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 198, nil},
	{205, "\U0001faf2", "leftwards hand", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"leftwards_hand"}},
	{206, "\U0001faf2\U0001f3fb", "leftwards hand: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 204, nil},
	{207, "\U0001faf2\U0001f3fc", "leftwards hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 204, nil},
	{208, "\U0001faf2\U0001f3fd", "leftwards hand: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 204, nil},
	{209, "\U0001faf2\U0001f3fe", "leftwards hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 204, nil},
	{210, "\U0001faf2\U0001f3ff", "leftwards hand: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 204, nil},
	{211, "\U0001faf3", "palm down hand", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"palm_down_hand"}},
	{212, "\U0001faf3\U0001f3fb", "palm down hand: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 210, nil},
	{213, "\U0001faf3\U0001f3fc", "palm down hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 210, nil},
	{214, "\U0001faf3\U0001f3fd", "palm down hand: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 210, nil},
	{215, "\U0001faf3\U0001f3fe", "palm down hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 210, nil},
	{216, "\U0001faf3\U0001f3ff", "palm down hand: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 210, nil},
	{217, "\U0001faf4", "palm up hand", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"palm_up_hand"}},
	{218, "\U0001faf4\U0001f3fb", "palm up hand: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 216, nil},
	{219, "\U0001faf4\U0001f3fc", "palm up hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 216, nil},
	{220, "\U0001faf4\U0001f3fd", "palm up hand: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 216, nil},
	{221, "\U0001faf4\U0001f3fe", "palm up hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 216, nil},
	{222, "\U0001faf4\U0001f3ff", "palm up hand: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 216, nil},
	{223, "\U0001faf7", "leftwards pushing hand", PeopleAndBody, UnicodeVersion{15, 0}, ToneDefault, -1, []string{"leftwards_pushing_hand"}},
	{224, "\U0001faf7\U0001f3fb", "leftwards pushing hand: light skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneLight, 222, nil},
	{225, "\U0001faf7\U0001f3fc", "leftwards pushing hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneMediumLight, 222, nil},
	{226, "\U0001faf7\U0001f3fd", "leftwards pushing hand: medium skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneMedium, 222, nil},
	{227, "\U0001faf7\U0001f3fe", "leftwards pushing hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneMediumDark, 222, nil},
	{228, "\U0001faf7\U0001f3ff", "leftwards pushing hand: dark skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneDark, 222, nil},
	{229, "\U0001faf8", "rightwards pushing hand", PeopleAndBody, UnicodeVersion{15, 0}, ToneDefault, -1, []string{"rightwards_pushing_hand"}},
	{230, "\U0001faf8\U0001f3fb", "rightwards pushing hand: light skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneLight, 228, nil},
	{231, "\U0001faf8\U0001f3fc", "rightwards pushing hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneMediumLight, 228, nil},
	{232, "\U0001faf8\U0001f3fd", "rightwards pushing hand: medium skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneMedium, 228, nil},
	{233, "\U0001faf8\U0001f3fe", "rightwards pushing hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneMediumDark, 228, nil},
	{234, "\U0001faf8\U0001f3ff", "rightwards pushing hand: dark skin tone", PeopleAndBody, UnicodeVersion{15, 0}, ToneDark, 228, nil},
	{235, "\U0001f44c", "OK hand", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"ok_hand"}},
	{236, "\U0001f44c\U0001f3fb", "OK hand: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 234, nil},
	{237, "\U0001f44c\U0001f3fc", "OK hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 234, nil},
	{238, "\U0001f44c\U0001f3fd", "OK hand: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 234, nil},
	{239, "\U0001f44c\U0001f3fe", "OK hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 234, nil},
	{240, "\U0001f44c\U0001f3ff", "OK hand: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 234, nil},
	{241, "\U0001f90c", "pinched fingers", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"pinched_fingers"}},
	{242, "\U0001f90c\U0001f3fb", "pinched fingers: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 240, nil},
	{243, "\U0001f90c\U0001f3fc", "pinched fingers: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 240, nil},
	{244, "\U0001f90c\U0001f3fd", "pinched fingers: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 240, nil},
	{245, "\U0001f90c\U0001f3fe", "pinched fingers: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 240, nil},
	{246, "\U0001f90c\U0001f3ff", "pinched fingers: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 240, nil},
	{247, "\U0001f90f", "pinching hand", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"pinching_hand"}},
	{248, "\U0001f90f\U0001f3fb", "pinching hand: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 246, nil},
	{249, "\U0001f90f\U0001f3fc", "pinching hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 246, nil},
	{250, "\U0001f90f\U0001f3fd", "pinching hand: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 246, nil},
	{251, "\U0001f90f\U0001f3fe", "pinching hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 246, nil},
	{252, "\U0001f90f\U0001f3ff", "pinching hand: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 246, nil},
	{253, "\u270c\ufe0f", "victory hand", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"v"}},
	{254, "\u270c\U0001f3fb", "victory hand: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 252, nil},
	{255, "\u270c\U0001f3fc", "victory hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 252, nil},
	{256, "\u270c\U0001f3fd", "victory hand: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 252, nil},
	{257, "\u270c\U0001f3fe", "victory hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 252, nil},
	{258, "\u270c\U0001f3ff", "victory hand: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 252, nil},
	{259, "\U0001f91e", "crossed fingers", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"crossed_fingers"}},
	{260, "\U0001f91e\U0001f3fb", "crossed fingers: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 258, nil},
	{261, "\U0001f91e\U0001f3fc", "crossed fingers: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 258, nil},
	{262, "\U0001f91e\U0001f3fd", "crossed fingers: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 258, nil},
	{263, "\U0001f91e\U0001f3fe", "crossed fingers: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 258, nil},
	{264, "\U0001f91e\U0001f3ff", "crossed fingers: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 258, nil},
	{265, "\U0001faf0", "hand with index finger and thumb crossed", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"hand_with_index_finger_and_thumb_crossed"}},
	{266, "\U0001faf0\U0001f3fb", "hand with index finger and thumb crossed: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 264, nil},
	{267, "\U0001faf0\U0001f3fc", "hand with index finger and thumb crossed: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 264, nil},
	{268, "\U0001faf0\U0001f3fd", "hand with index finger and thumb crossed: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 264, nil},
	{269, "\U0001faf0\U0001f3fe", "hand with index finger and thumb crossed: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 264, nil},
	{270, "\U0001faf0\U0001f3ff", "hand with index finger and thumb crossed: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 264, nil},
	{271, "\U0001f91f", "love-you gesture", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"love_you_gesture"}},
	{272, "\U0001f91f\U0001f3fb", "love-you gesture: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 270, nil},
	{273, "\U0001f91f\U0001f3fc", "love-you gesture: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 270, nil},
	{274, "\U0001f91f\U0001f3fd", "love-you gesture: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 270, nil},
	{275, "\U0001f91f\U0001f3fe", "love-you gesture: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 270, nil},
	{276, "\U0001f91f\U0001f3ff", "love-you gesture: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 270, nil},
	{277, "\U0001f918", "sign of the horns", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"sign_of_the_horns"}},
	{278, "\U0001f918\U0001f3fb", "sign of the horns: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 276, nil},
	{279, "\U0001f918\U0001f3fc", "sign of the horns: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 276, nil},
	{280, "\U0001f918\U0001f3fd", "sign of the horns: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 276, nil},
	{281, "\U0001f918\U0001f3fe", "sign of the horns: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 276, nil},
	{282, "\U0001f918\U0001f3ff", "sign of the horns: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 276, nil},
	{283, "\U0001f919", "call me hand", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"call_me_hand"}},
	{284, "\U0001f919\U0001f3fb", "call me hand: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 282, nil},
	{285, "\U0001f919\U0001f3fc", "call me hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 282, nil},
	{286, "\U0001f919\U0001f3fd", "call me hand: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 282, nil},
	{287, "\U0001f919\U0001f3fe", "call me hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 282, nil},
	{288, "\U0001f919\U0001f3ff", "call me hand: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 282, nil},
	{289, "\U0001f448", "backhand index pointing left", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"backhand_index_pointing_left"}},
	{290, "\U0001f448\U0001f3fb", "backhand index pointing left: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 288, nil},
	{291, "\U0001f448\U0001f3fc", "backhand index pointing left: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 288, nil},
	{292, "\U0001f448\U0001f3fd", "backhand index pointing left: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 288, nil},
	{293, "\U0001f448\U0001f3fe", "backhand index pointing left: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 288, nil},
	{294, "\U0001f448\U0001f3ff", "backhand index pointing left: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 288, nil},
	{295, "\U0001f449", "backhand index pointing right", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"backhand_index_pointing_right"}},
	{296, "\U0001f449\U0001f3fb", "backhand index pointing right: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 294, nil},
	{297, "\U0001f449\U0001f3fc", "backhand index pointing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 294, nil},
	{298, "\U0001f449\U0001f3fd", "backhand index pointing right: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 294, nil},
	{299, "\U0001f449\U0001f3fe", "backhand index pointing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 294, nil},
	{300, "\U0001f449\U0001f3ff", "backhand index pointing right: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 294, nil},
	{301, "\U0001f446", "backhand index pointing up", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"backhand_index_pointing_up"}},
	{302, "\U0001f446\U0001f3fb", "backhand index pointing up: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 300, nil},
	{303, "\U0001f446\U0001f3fc", "backhand index pointing up: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 300, nil},
	{304, "\U0001f446\U0001f3fd", "backhand index pointing up: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 300, nil},
	{305, "\U0001f446\U0001f3fe", "backhand index pointing up: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 300, nil},
	{306, "\U0001f446\U0001f3ff", "backhand index pointing up: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 300, nil},
	{307, "\U0001f595", "middle finger", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"middle_finger"}},
	{308, "\U0001f595\U0001f3fb", "middle finger: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 306, nil},
	{309, "\U0001f595\U0001f3fc", "middle finger: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 306, nil},
	{310, "\U0001f595\U0001f3fd", "middle finger: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 306, nil},
	{311, "\U0001f595\U0001f3fe", "middle finger: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 306, nil},
	{312, "\U0001f595\U0001f3ff", "middle finger: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 306, nil},
	{313, "\U0001f447", "backhand index pointing down", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"backhand_index_pointing_down"}},
	{314, "\U0001f447\U0001f3fb", "backhand index pointing down: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 312, nil},
	{315, "\U0001f447\U0001f3fc", "backhand index pointing down: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 312, nil},
	{316, "\U0001f447\U0001f3fd", "backhand index pointing down: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 312, nil},
	{317, "\U0001f447\U0001f3fe", "backhand index pointing down: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 312, nil},
	{318, "\U0001f447\U0001f3ff", "backhand index pointing down: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 312, nil},
	{319, "\u261d\ufe0f", "index pointing up", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"index_pointing_up"}},
	{320, "\u261d\U0001f3fb", "index pointing up: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 318, nil},
	{321, "\u261d\U0001f3fc", "index pointing up: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 318, nil},
	{322, "\u261d\U0001f3fd", "index pointing up: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 318, nil},
	{323, "\u261d\U0001f3fe", "index pointing up: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 318, nil},
	{324, "\u261d\U0001f3ff", "index pointing up: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 318, nil},
	{325, "\U0001faf5", "index pointing at the viewer", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"index_pointing_at_the_viewer"}},
	{326, "\U0001faf5\U0001f3fb", "index pointing at the viewer: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 324, nil},
	{327, "\U0001faf5\U0001f3fc", "index pointing at the viewer: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 324, nil},
	{328, "\U0001faf5\U0001f3fd", "index pointing at the viewer: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 324, nil},
	{329, "\U0001faf5\U0001f3fe", "index pointing at the viewer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 324, nil},
	{330, "\U0001faf5\U0001f3ff", "index pointing at the viewer: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 324, nil},
	{331, "\U0001f44d", "thumbs up", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"+1", "thumbsup"}},
	{332, "\U0001f44d\U0001f3fb", "thumbs up: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 330, nil},
	{333, "\U0001f44d\U0001f3fc", "thumbs up: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 330, nil},
	{334, "\U0001f44d\U0001f3fd", "thumbs up: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 330, nil},
	{335, "\U0001f44d\U0001f3fe", "thumbs up: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 330, nil},
	{336, "\U0001f44d\U0001f3ff", "thumbs up: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 330, nil},
	{337, "\U0001f44e", "thumbs down", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"-1", "thumbsdown"}},
	{338, "\U0001f44e\U0001f3fb", "thumbs down: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 336, nil},
	{339, "\U0001f44e\U0001f3fc", "thumbs down: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 336, nil},
	{340, "\U0001f44e\U0001f3fd", "thumbs down: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 336, nil},
	{341, "\U0001f44e\U0001f3fe", "thumbs down: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 336, nil},
	{342, "\U0001f44e\U0001f3ff", "thumbs down: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 336, nil},
	{343, "\u270a", "raised fist", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"raised_fist"}},
	{344, "\u270a\U0001f3fb", "raised fist: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 342, nil},
	{345, "\u270a\U0001f3fc", "raised fist: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 342, nil},
	{346, "\u270a\U0001f3fd", "raised fist: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 342, nil},
	{347, "\u270a\U0001f3fe", "raised fist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 342, nil},
	{348, "\u270a\U0001f3ff", "raised fist: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 342, nil},
	{349, "\U0001f44a", "oncoming fist", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"oncoming_fist"}},
	{350, "\U0001f44a\U0001f3fb", "oncoming fist: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 348, nil},
	{351, "\U0001f44a\U0001f3fc", "oncoming fist: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 348, nil},
	{352, "\U0001f44a\U0001f3fd", "oncoming fist: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 348, nil},
	{353, "\U0001f44a\U0001f3fe", "oncoming fist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 348, nil},
	{354, "\U0001f44a\U0001f3ff", "oncoming fist: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 348, nil},
	{355, "\U0001f91b", "left-facing fist", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"left_facing_fist"}},
	{356, "\U0001f91b\U0001f3fb", "left-facing fist: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 354, nil},
	{357, "\U0001f91b\U0001f3fc", "left-facing fist: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 354, nil},
	{358, "\U0001f91b\U0001f3fd", "left-facing fist: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 354, nil},
	{359, "\U0001f91b\U0001f3fe", "left-facing fist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 354, nil},
	{360, "\U0001f91b\U0001f3ff", "left-facing fist: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 354, nil},
	{361, "\U0001f91c", "right-facing fist", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"right_facing_fist"}},
	{362, "\U0001f91c\U0001f3fb", "right-facing fist: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 360, nil},
	{363, "\U0001f91c\U0001f3fc", "right-facing fist: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 360, nil},
	{364, "\U0001f91c\U0001f3fd", "right-facing fist: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 360, nil},
	{365, "\U0001f91c\U0001f3fe", "right-facing fist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 360, nil},
	{366, "\U0001f91c\U0001f3ff", "right-facing fist: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 360, nil},
	{367, "\U0001f44f", "clapping hands", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"clap"}},
	{368, "\U0001f44f\U0001f3fb", "clapping hands: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 366, nil},
	{369, "\U0001f44f\U0001f3fc", "clapping hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 366, nil},
	{370, "\U0001f44f\U0001f3fd", "clapping hands: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 366, nil},
	{371, "\U0001f44f\U0001f3fe", "clapping hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 366, nil},
	{372, "\U0001f44f\U0001f3ff", "clapping hands: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 366, nil},
	{373, "\U0001f64c", "raising hands", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"raising_hands"}},
	{374, "\U0001f64c\U0001f3fb", "raising hands: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 372, nil},
	{375, "\U0001f64c\U0001f3fc", "raising hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 372, nil},
	{376, "\U0001f64c\U0001f3fd", "raising hands: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 372, nil},
	{377, "\U0001f64c\U0001f3fe", "raising hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 372, nil},
	{378, "\U0001f64c\U0001f3ff", "raising hands: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 372, nil},
	{379, "\U0001faf6", "heart hands", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"heart_hands"}},
	{380, "\U0001faf6\U0001f3fb", "heart hands: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 378, nil},
	{381, "\U0001faf6\U0001f3fc", "heart hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 378, nil},
	{382, "\U0001faf6\U0001f3fd", "heart hands: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 378, nil},
	{383, "\U0001faf6\U0001f3fe", "heart hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 378, nil},
	{384, "\U0001faf6\U0001f3ff", "heart hands: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 378, nil},
	{385, "\U0001f450", "open hands", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"open_hands"}},
	{386, "\U0001f450\U0001f3fb", "open hands: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 384, nil},
	{387, "\U0001f450\U0001f3fc", "open hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 384, nil},
	{388, "\U0001f450\U0001f3fd", "open hands: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 384, nil},
	{389, "\U0001f450\U0001f3fe", "open hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 384, nil},
	{390, "\U0001f450\U0001f3ff", "open hands: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 384, nil},
	{391, "\U0001f932", "palms up together", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"palms_up_together"}},
	{392, "\U0001f932\U0001f3fb", "palms up together: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 390, nil},
	{393, "\U0001f932\U0001f3fc", "palms up together: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 390, nil},
	{394, "\U0001f932\U0001f3fd", "palms up together: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 390, nil},
	{395, "\U0001f932\U0001f3fe", "palms up together: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 390, nil},
	{396, "\U0001f932\U0001f3ff", "palms up together: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 390, nil},
	{397, "\U0001f91d", "handshake", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"handshake"}},
	{398, "\U0001f91d\U0001f3fb", "handshake: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 396, nil},
	{399, "\U0001f91d\U0001f3fc", "handshake: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 396, nil},
	{400, "\U0001f91d\U0001f3fd", "handshake: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 396, nil},
	{401, "\U0001f91d\U0001f3fe", "handshake: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 396, nil},
	{402, "\U0001f91d\U0001f3ff", "handshake: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 396, nil},
	{403, "\U0001f64f", "folded hands", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"pray"}},
	{404, "\U0001f64f\U0001f3fb", "folded hands: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 402, nil},
	{405, "\U0001f64f\U0001f3fc", "folded hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 402, nil},
	{406, "\U0001f64f\U0001f3fd", "folded hands: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 402, nil},
	{407, "\U0001f64f\U0001f3fe", "folded hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 402, nil},
	{408, "\U0001f64f\U0001f3ff", "folded hands: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 402, nil},
	{409, "\u270d\ufe0f", "writing hand", PeopleAndBody, UnicodeVersion{0, 7}, ToneDefault, -1, []string{"writing_hand"}},
	{410, "\u270d\U0001f3fb", "writing hand: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 408, nil},
	{411, "\u270d\U0001f3fc", "writing hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 408, nil},
	{412, "\u270d\U0001f3fd", "writing hand: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 408, nil},
	{413, "\u270d\U0001f3fe", "writing hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 408, nil},
	{414, "\u270d\U0001f3ff", "writing hand: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 408, nil},
	{415, "\U0001f485", "nail polish", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"nail_polish"}},
	{416, "\U0001f485\U0001f3fb", "nail polish: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 414, nil},
	{417, "\U0001f485\U0001f3fc", "nail polish: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 414, nil},
	{418, "\U0001f485\U0001f3fd", "nail polish: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 414, nil},
	{419, "\U0001f485\U0001f3fe", "nail polish: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 414, nil},
	{420, "\U0001f485\U0001f3ff", "nail polish: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 414, nil},
	{421, "\U0001f933", "selfie", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"selfie"}},
	{422, "\U0001f933\U0001f3fb", "selfie: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 420, nil},
	{423, "\U0001f933\U0001f3fc", "selfie: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 420, nil},
	{424, "\U0001f933\U0001f3fd", "selfie: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 420, nil},
	{425, "\U0001f933\U0001f3fe", "selfie: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 420, nil},
	{426, "\U0001f933\U0001f3ff", "selfie: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 420, nil},
	{427, "\U0001f4aa", "flexed biceps", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"muscle"}},
	{428, "\U0001f4aa\U0001f3fb", "flexed biceps: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 426, nil},
	{429, "\U0001f4aa\U0001f3fc", "flexed biceps: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 426, nil},
	{430, "\U0001f4aa\U0001f3fd", "flexed biceps: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 426, nil},
	{431, "\U0001f4aa\U0001f3fe", "flexed biceps: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 426, nil},
	{432, "\U0001f4aa\U0001f3ff", "flexed biceps: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 426, nil},
	{433, "\U0001f9be", "mechanical arm", PeopleAndBody, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"mechanical_arm"}},
	{434, "\U0001f9bf", "mechanical leg", PeopleAndBody, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"mechanical_leg"}},
	{435, "\U0001f9b5", "leg", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"leg"}},
	{436, "\U0001f9b5\U0001f3fb", "leg: light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 434, nil},
	{437, "\U0001f9b5\U0001f3fc", "leg: medium-light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 434, nil},
	{438, "\U0001f9b5\U0001f3fd", "leg: medium skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 434, nil},
	{439, "\U0001f9b5\U0001f3fe", "leg: medium-dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 434, nil},
	{440, "\U0001f9b5\U0001f3ff", "leg: dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 434, nil},
	{441, "\U0001f9b6", "foot", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"foot"}},
	{442, "\U0001f9b6\U0001f3fb", "foot: light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 440, nil},
	{443, "\U0001f9b6\U0001f3fc", "foot: medium-light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 440, nil},
	{444, "\U0001f9b6\U0001f3fd", "foot: medium skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 440, nil},
	{445, "\U0001f9b6\U0001f3fe", "foot: medium-dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 440, nil},
	{446, "\U0001f9b6\U0001f3ff", "foot: dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 440, nil},
	{447, "\U0001f442", "ear", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"ear"}},
	{448, "\U0001f442\U0001f3fb", "ear: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 446, nil},
	{449, "\U0001f442\U0001f3fc", "ear: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 446, nil},
	{450, "\U0001f442\U0001f3fd", "ear: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 446, nil},
	{451, "\U0001f442\U0001f3fe", "ear: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 446, nil},
	{452, "\U0001f442\U0001f3ff", "ear: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 446, nil},
	{453, "\U0001f9bb", "ear with hearing aid", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"ear_with_hearing_aid"}},
	{454, "\U0001f9bb\U0001f3fb", "ear with hearing aid: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 452, nil},
	{455, "\U0001f9bb\U0001f3fc", "ear with hearing aid: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 452, nil},
	{456, "\U0001f9bb\U0001f3fd", "ear with hearing aid: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 452, nil},
	{457, "\U0001f9bb\U0001f3fe", "ear with hearing aid: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 452, nil},
	{458, "\U0001f9bb\U0001f3ff", "ear with hearing aid: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 452, nil},
	{459, "\U0001f443", "nose", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"nose"}},
	{460, "\U0001f443\U0001f3fb", "nose: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 458, nil},
	{461, "\U0001f443\U0001f3fc", "nose: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 458, nil},
	{462, "\U0001f443\U0001f3fd", "nose: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 458, nil},
	{463, "\U0001f443\U0001f3fe", "nose: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 458, nil},
	{464, "\U0001f443\U0001f3ff", "nose: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 458, nil},
	{465, "\U0001f9e0", "brain", PeopleAndBody, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"brain"}},
	{466, "\U0001fac0", "anatomical heart", PeopleAndBody, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"anatomical_heart"}},
	{467, "\U0001fac1", "lungs", PeopleAndBody, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"lungs"}},
	{468, "\U0001f9b7", "tooth", PeopleAndBody, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"tooth"}},
	{469, "\U0001f9b4", "bone", PeopleAndBody, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"bone"}},
	{470, "\U0001f440", "eyes", PeopleAndBody, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"eyes"}},
	{471, "\U0001f441\ufe0f", "eye", PeopleAndBody, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"eye"}},
	{472, "\U0001f445", "tongue", PeopleAndBody, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tongue"}},
	{473, "\U0001f444", "mouth", PeopleAndBody, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"mouth"}},
	{474, "\U0001fae6", "biting lip", PeopleAndBody, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"biting_lip"}},
	{475, "\U0001f476", "baby", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"baby"}},
	{476, "\U0001f476\U0001f3fb", "baby: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 474, nil},
	{477, "\U0001f476\U0001f3fc", "baby: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 474, nil},
	{478, "\U0001f476\U0001f3fd", "baby: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 474, nil},
	{479, "\U0001f476\U0001f3fe", "baby: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 474, nil},
	{480, "\U0001f476\U0001f3ff", "baby: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 474, nil},
	{481, "\U0001f9d2", "child", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"child"}},
	{482, "\U0001f9d2\U0001f3fb", "child: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 480, nil},
	{483, "\U0001f9d2\U0001f3fc", "child: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 480, nil},
	{484, "\U0001f9d2\U0001f3fd", "child: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 480, nil},
	{485, "\U0001f9d2\U0001f3fe", "child: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 480, nil},
	{486, "\U0001f9d2\U0001f3ff", "child: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 480, nil},
	{487, "\U0001f466", "boy", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"boy"}},
	{488, "\U0001f466\U0001f3fb", "boy: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 486, nil},
	{489, "\U0001f466\U0001f3fc", "boy: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 486, nil},
	{490, "\U0001f466\U0001f3fd", "boy: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 486, nil},
	{491, "\U0001f466\U0001f3fe", "boy: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 486, nil},
	{492, "\U0001f466\U0001f3ff", "boy: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 486, nil},
	{493, "\U0001f467", "girl", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"girl"}},
	{494, "\U0001f467\U0001f3fb", "girl: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 492, nil},
	{495, "\U0001f467\U0001f3fc", "girl: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 492, nil},
	{496, "\U0001f467\U0001f3fd", "girl: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 492, nil},
	{497, "\U0001f467\U0001f3fe", "girl: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 492, nil},
	{498, "\U0001f467\U0001f3ff", "girl: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 492, nil},
	{499, "\U0001f9d1", "person", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"adult"}},
	{500, "\U0001f9d1\U0001f3fb", "person: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 498, nil},
	{501, "\U0001f9d1\U0001f3fc", "person: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 498, nil},
	{502, "\U0001f9d1\U0001f3fd", "person: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 498, nil},
	{503, "\U0001f9d1\U0001f3fe", "person: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 498, nil},
	{504, "\U0001f9d1\U0001f3ff", "person: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 498, nil},
	{505, "\U0001f471", "person: blond hair", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_blond_hair"}},
	{506, "\U0001f471\U0001f3fb", "person: light skin tone, blond hair", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 504, nil},
	{507, "\U0001f471\U0001f3fc", "person: medium-light skin tone, blond hair", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 504, nil},
	{508, "\U0001f471\U0001f3fd", "person: medium skin tone, blond hair", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 504, nil},
	{509, "\U0001f471\U0001f3fe", "person: medium-dark skin tone, blond hair", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 504, nil},
	{510, "\U0001f471\U0001f3ff", "person: dark skin tone, blond hair", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 504, nil},
	{511, "\U0001f468", "man", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"man"}},
	{512, "\U0001f468\U0001f3fb", "man: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 510, nil},
	{513, "\U0001f468\U0001f3fc", "man: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 510, nil},
	{514, "\U0001f468\U0001f3fd", "man: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 510, nil},
	{515, "\U0001f468\U0001f3fe", "man: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 510, nil},
	{516, "\U0001f468\U0001f3ff", "man: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 510, nil},
	{517, "\U0001f9d4", "person: beard", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"person_beard"}},
	{518, "\U0001f9d4\U0001f3fb", "person: light skin tone, beard", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 516, nil},
	{519, "\U0001f9d4\U0001f3fc", "person: medium-light skin tone, beard", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 516, nil},
	{520, "\U0001f9d4\U0001f3fd", "person: medium skin tone, beard", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 516, nil},
	{521, "\U0001f9d4\U0001f3fe", "person: medium-dark skin tone, beard", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 516, nil},
	{522, "\U0001f9d4\U0001f3ff", "person: dark skin tone, beard", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 516, nil},
	{523, "\U0001f9d4\u200d\u2642\ufe0f", "man: beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneDefault, -1, []string{"man_beard"}},
	{524, "\U0001f9d4\U0001f3fb\u200d\u2642\ufe0f", "man: light skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 522, nil},
	{525, "\U0001f9d4\U0001f3fc\u200d\u2642\ufe0f", "man: medium-light skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 522, nil},
	{526, "\U0001f9d4\U0001f3fd\u200d\u2642\ufe0f", "man: medium skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 522, nil},
	{527, "\U0001f9d4\U0001f3fe\u200d\u2642\ufe0f", "man: medium-dark skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 522, nil},
	{528, "\U0001f9d4\U0001f3ff\u200d\u2642\ufe0f", "man: dark skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 522, nil},
	{529, "\U0001f9d4\u200d\u2640\ufe0f", "woman: beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneDefault, -1, []string{"woman_beard"}},
	{530, "\U0001f9d4\U0001f3fb\u200d\u2640\ufe0f", "woman: light skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 528, nil},
	{531, "\U0001f9d4\U0001f3fc\u200d\u2640\ufe0f", "woman: medium-light skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 528, nil},
	{532, "\U0001f9d4\U0001f3fd\u200d\u2640\ufe0f", "woman: medium skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 528, nil},
	{533, "\U0001f9d4\U0001f3fe\u200d\u2640\ufe0f", "woman: medium-dark skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 528, nil},
	{534, "\U0001f9d4\U0001f3ff\u200d\u2640\ufe0f", "woman: dark skin tone, beard", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 528, nil},
	{535, "\U0001f468\u200d\U0001f9b0", "man: red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"man_red_hair"}},
	{536, "\U0001f468\U0001f3fb\u200d\U0001f9b0", "man: light skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 534, nil},
	{537, "\U0001f468\U0001f3fc\u200d\U0001f9b0", "man: medium-light skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 534, nil},
	{538, "\U0001f468\U0001f3fd\u200d\U0001f9b0", "man: medium skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 534, nil},
	{539, "\U0001f468\U0001f3fe\u200d\U0001f9b0", "man: medium-dark skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 534, nil},
	{540, "\U0001f468\U0001f3ff\u200d\U0001f9b0", "man: dark skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 534, nil},
	{541, "\U0001f468\u200d\U0001f9b1", "man: curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"man_curly_hair"}},
	{542, "\U0001f468\U0001f3fb\u200d\U0001f9b1", "man: light skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 540, nil},
	{543, "\U0001f468\U0001f3fc\u200d\U0001f9b1", "man: medium-light skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 540, nil},
	{544, "\U0001f468\U0001f3fd\u200d\U0001f9b1", "man: medium skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 540, nil},
	{545, "\U0001f468\U0001f3fe\u200d\U0001f9b1", "man: medium-dark skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 540, nil},
	{546, "\U0001f468\U0001f3ff\u200d\U0001f9b1", "man: dark skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 540, nil},
	{547, "\U0001f468\u200d\U0001f9b3", "man: white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"man_white_hair"}},
	{548, "\U0001f468\U0001f3fb\u200d\U0001f9b3", "man: light skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 546, nil},
	{549, "\U0001f468\U0001f3fc\u200d\U0001f9b3", "man: medium-light skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 546, nil},
	{550, "\U0001f468\U0001f3fd\u200d\U0001f9b3", "man: medium skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 546, nil},
	{551, "\U0001f468\U0001f3fe\u200d\U0001f9b3", "man: medium-dark skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 546, nil},
	{552, "\U0001f468\U0001f3ff\u200d\U0001f9b3", "man: dark skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 546, nil},
	{553, "\U0001f468\u200d\U0001f9b2", "man: bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"man_bald"}},
	{554, "\U0001f468\U0001f3fb\u200d\U0001f9b2", "man: light skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 552, nil},
	{555, "\U0001f468\U0001f3fc\u200d\U0001f9b2", "man: medium-light skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 552, nil},
	{556, "\U0001f468\U0001f3fd\u200d\U0001f9b2", "man: medium skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 552, nil},
	{557, "\U0001f468\U0001f3fe\u200d\U0001f9b2", "man: medium-dark skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 552, nil},
	{558, "\U0001f468\U0001f3ff\u200d\U0001f9b2", "man: dark skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 552, nil},
	{559, "\U0001f469", "woman", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"woman"}},
	{560, "\U0001f469\U0001f3fb", "woman: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 558, nil},
	{561, "\U0001f469\U0001f3fc", "woman: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 558, nil},
	{562, "\U0001f469\U0001f3fd", "woman: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 558, nil},
	{563, "\U0001f469\U0001f3fe", "woman: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 558, nil},
	{564, "\U0001f469\U0001f3ff", "woman: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 558, nil},
	{565, "\U0001f469\u200d\U0001f9b0", "woman: red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"woman_red_hair"}},
	{566, "\U0001f469\U0001f3fb\u200d\U0001f9b0", "woman: light skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 564, nil},
	{567, "\U0001f469\U0001f3fc\u200d\U0001f9b0", "woman: medium-light skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 564, nil},
	{568, "\U0001f469\U0001f3fd\u200d\U0001f9b0", "woman: medium skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 564, nil},
	{569, "\U0001f469\U0001f3fe\u200d\U0001f9b0", "woman: medium-dark skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 564, nil},
	{570, "\U0001f469\U0001f3ff\u200d\U0001f9b0", "woman: dark skin tone, red hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 564, nil},
	{571, "\U0001f9d1\u200d\U0001f9b0", "person: red hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"person_red_hair"}},
	{572, "\U0001f9d1\U0001f3fb\u200d\U0001f9b0", "person: light skin tone, red hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 570, nil},
	{573, "\U0001f9d1\U0001f3fc\u200d\U0001f9b0", "person: medium-light skin tone, red hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 570, nil},
	{574, "\U0001f9d1\U0001f3fd\u200d\U0001f9b0", "person: medium skin tone, red hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 570, nil},
	{575, "\U0001f9d1\U0001f3fe\u200d\U0001f9b0", "person: medium-dark skin tone, red hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 570, nil},
	{576, "\U0001f9d1\U0001f3ff\u200d\U0001f9b0", "person: dark skin tone, red hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 570, nil},
	{577, "\U0001f469\u200d\U0001f9b1", "woman: curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"woman_curly_hair"}},
	{578, "\U0001f469\U0001f3fb\u200d\U0001f9b1", "woman: light skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 576, nil},
	{579, "\U0001f469\U0001f3fc\u200d\U0001f9b1", "woman: medium-light skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 576, nil},
	{580, "\U0001f469\U0001f3fd\u200d\U0001f9b1", "woman: medium skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 576, nil},
	{581, "\U0001f469\U0001f3fe\u200d\U0001f9b1", "woman: medium-dark skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 576, nil},
	{582, "\U0001f469\U0001f3ff\u200d\U0001f9b1", "woman: dark skin tone, curly hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 576, nil},
	{583, "\U0001f9d1\u200d\U0001f9b1", "person: curly hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"person_curly_hair"}},
	{584, "\U0001f9d1\U0001f3fb\u200d\U0001f9b1", "person: light skin tone, curly hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 582, nil},
	{585, "\U0001f9d1\U0001f3fc\u200d\U0001f9b1", "person: medium-light skin tone, curly hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 582, nil},
	{586, "\U0001f9d1\U0001f3fd\u200d\U0001f9b1", "person: medium skin tone, curly hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 582, nil},
	{587, "\U0001f9d1\U0001f3fe\u200d\U0001f9b1", "person: medium-dark skin tone, curly hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 582, nil},
	{588, "\U0001f9d1\U0001f3ff\u200d\U0001f9b1", "person: dark skin tone, curly hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 582, nil},
	{589, "\U0001f469\u200d\U0001f9b3", "woman: white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"woman_white_hair"}},
	{590, "\U0001f469\U0001f3fb\u200d\U0001f9b3", "woman: light skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 588, nil},
	{591, "\U0001f469\U0001f3fc\u200d\U0001f9b3", "woman: medium-light skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 588, nil},
	{592, "\U0001f469\U0001f3fd\u200d\U0001f9b3", "woman: medium skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 588, nil},
	{593, "\U0001f469\U0001f3fe\u200d\U0001f9b3", "woman: medium-dark skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 588, nil},
	{594, "\U0001f469\U0001f3ff\u200d\U0001f9b3", "woman: dark skin tone, white hair", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 588, nil},
	{595, "\U0001f9d1\u200d\U0001f9b3", "person: white hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"person_white_hair"}},
	{596, "\U0001f9d1\U0001f3fb\u200d\U0001f9b3", "person: light skin tone, white hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 594, nil},
	{597, "\U0001f9d1\U0001f3fc\u200d\U0001f9b3", "person: medium-light skin tone, white hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 594, nil},
	{598, "\U0001f9d1\U0001f3fd\u200d\U0001f9b3", "person: medium skin tone, white hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 594, nil},
	{599, "\U0001f9d1\U0001f3fe\u200d\U0001f9b3", "person: medium-dark skin tone, white hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 594, nil},
	{600, "\U0001f9d1\U0001f3ff\u200d\U0001f9b3", "person: dark skin tone, white hair", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 594, nil},
	{601, "\U0001f469\u200d\U0001f9b2", "woman: bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"woman_bald"}},
	{602, "\U0001f469\U0001f3fb\u200d\U0001f9b2", "woman: light skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 600, nil},
	{603, "\U0001f469\U0001f3fc\u200d\U0001f9b2", "woman: medium-light skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 600, nil},
	{604, "\U0001f469\U0001f3fd\u200d\U0001f9b2", "woman: medium skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 600, nil},
	{605, "\U0001f469\U0001f3fe\u200d\U0001f9b2", "woman: medium-dark skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 600, nil},
	{606, "\U0001f469\U0001f3ff\u200d\U0001f9b2", "woman: dark skin tone, bald", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 600, nil},
	{607, "\U0001f9d1\u200d\U0001f9b2", "person: bald", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"person_bald"}},
	{608, "\U0001f9d1\U0001f3fb\u200d\U0001f9b2", "person: light skin tone, bald", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 606, nil},
	{609, "\U0001f9d1\U0001f3fc\u200d\U0001f9b2", "person: medium-light skin tone, bald", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 606, nil},
	{610, "\U0001f9d1\U0001f3fd\u200d\U0001f9b2", "person: medium skin tone, bald", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 606, nil},
	{611, "\U0001f9d1\U0001f3fe\u200d\U0001f9b2", "person: medium-dark skin tone, bald", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 606, nil},
	{612, "\U0001f9d1\U0001f3ff\u200d\U0001f9b2", "person: dark skin tone, bald", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 606, nil},
	{613, "\U0001f471\u200d\u2640\ufe0f", "woman: blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_blond_hair"}},
	{614, "\U0001f471\U0001f3fb\u200d\u2640\ufe0f", "woman: light skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 612, nil},
	{615, "\U0001f471\U0001f3fc\u200d\u2640\ufe0f", "woman: medium-light skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 612, nil},
	{616, "\U0001f471\U0001f3fd\u200d\u2640\ufe0f", "woman: medium skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 612, nil},
	{617, "\U0001f471\U0001f3fe\u200d\u2640\ufe0f", "woman: medium-dark skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 612, nil},
	{618, "\U0001f471\U0001f3ff\u200d\u2640\ufe0f", "woman: dark skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 612, nil},
	{619, "\U0001f471\u200d\u2642\ufe0f", "man: blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_blond_hair"}},
	{620, "\U0001f471\U0001f3fb\u200d\u2642\ufe0f", "man: light skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 618, nil},
	{621, "\U0001f471\U0001f3fc\u200d\u2642\ufe0f", "man: medium-light skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 618, nil},
	{622, "\U0001f471\U0001f3fd\u200d\u2642\ufe0f", "man: medium skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 618, nil},
	{623, "\U0001f471\U0001f3fe\u200d\u2642\ufe0f", "man: medium-dark skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 618, nil},
	{624, "\U0001f471\U0001f3ff\u200d\u2642\ufe0f", "man: dark skin tone, blond hair", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 618, nil},
	{625, "\U0001f9d3", "older person", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"older_person"}},
	{626, "\U0001f9d3\U0001f3fb", "older person: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 624, nil},
	{627, "\U0001f9d3\U0001f3fc", "older person: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 624, nil},
	{628, "\U0001f9d3\U0001f3fd", "older person: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 624, nil},
	{629, "\U0001f9d3\U0001f3fe", "older person: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 624, nil},
	{630, "\U0001f9d3\U0001f3ff", "older person: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 624, nil},
	{631, "\U0001f474", "old man", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"old_man"}},
	{632, "\U0001f474\U0001f3fb", "old man: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 630, nil},
	{633, "\U0001f474\U0001f3fc", "old man: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 630, nil},
	{634, "\U0001f474\U0001f3fd", "old man: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 630, nil},
	{635, "\U0001f474\U0001f3fe", "old man: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 630, nil},
	{636, "\U0001f474\U0001f3ff", "old man: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 630, nil},
	{637, "\U0001f475", "old woman", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"old_woman"}},
	{638, "\U0001f475\U0001f3fb", "old woman: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 636, nil},
	{639, "\U0001f475\U0001f3fc", "old woman: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 636, nil},
	{640, "\U0001f475\U0001f3fd", "old woman: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 636, nil},
	{641, "\U0001f475\U0001f3fe", "old woman: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 636, nil},
	{642, "\U0001f475\U0001f3ff", "old woman: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 636, nil},
	{643, "\U0001f64d", "person frowning", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_frowning"}},
	{644, "\U0001f64d\U0001f3fb", "person frowning: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 642, nil},
	{645, "\U0001f64d\U0001f3fc", "person frowning: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 642, nil},
	{646, "\U0001f64d\U0001f3fd", "person frowning: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 642, nil},
	{647, "\U0001f64d\U0001f3fe", "person frowning: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 642, nil},
	{648, "\U0001f64d\U0001f3ff", "person frowning: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 642, nil},
	{649, "\U0001f64d\u200d\u2642\ufe0f", "man frowning", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_frowning"}},
	{650, "\U0001f64d\U0001f3fb\u200d\u2642\ufe0f", "man frowning: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 648, nil},
	{651, "\U0001f64d\U0001f3fc\u200d\u2642\ufe0f", "man frowning: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 648, nil},
	{652, "\U0001f64d\U0001f3fd\u200d\u2642\ufe0f", "man frowning: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 648, nil},
	{653, "\U0001f64d\U0001f3fe\u200d\u2642\ufe0f", "man frowning: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 648, nil},
	{654, "\U0001f64d\U0001f3ff\u200d\u2642\ufe0f", "man frowning: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 648, nil},
	{655, "\U0001f64d\u200d\u2640\ufe0f", "woman frowning", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_frowning"}},
	{656, "\U0001f64d\U0001f3fb\u200d\u2640\ufe0f", "woman frowning: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 654, nil},
	{657, "\U0001f64d\U0001f3fc\u200d\u2640\ufe0f", "woman frowning: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 654, nil},
	{658, "\U0001f64d\U0001f3fd\u200d\u2640\ufe0f", "woman frowning: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 654, nil},
	{659, "\U0001f64d\U0001f3fe\u200d\u2640\ufe0f", "woman frowning: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 654, nil},
	{660, "\U0001f64d\U0001f3ff\u200d\u2640\ufe0f", "woman frowning: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 654, nil},
	{661, "\U0001f64e", "person pouting", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_pouting"}},
	{662, "\U0001f64e\U0001f3fb", "person pouting: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 660, nil},
	{663, "\U0001f64e\U0001f3fc", "person pouting: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 660, nil},
	{664, "\U0001f64e\U0001f3fd", "person pouting: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 660, nil},
	{665, "\U0001f64e\U0001f3fe", "person pouting: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 660, nil},
	{666, "\U0001f64e\U0001f3ff", "person pouting: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 660, nil},
	{667, "\U0001f64e\u200d\u2642\ufe0f", "man pouting", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_pouting"}},
	{668, "\U0001f64e\U0001f3fb\u200d\u2642\ufe0f", "man pouting: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 666, nil},
	{669, "\U0001f64e\U0001f3fc\u200d\u2642\ufe0f", "man pouting: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 666, nil},
	{670, "\U0001f64e\U0001f3fd\u200d\u2642\ufe0f", "man pouting: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 666, nil},
	{671, "\U0001f64e\U0001f3fe\u200d\u2642\ufe0f", "man pouting: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 666, nil},
	{672, "\U0001f64e\U0001f3ff\u200d\u2642\ufe0f", "man pouting: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 666, nil},
	{673, "\U0001f64e\u200d\u2640\ufe0f", "woman pouting", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_pouting"}},
	{674, "\U0001f64e\U0001f3fb\u200d\u2640\ufe0f", "woman pouting: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 672, nil},
	{675, "\U0001f64e\U0001f3fc\u200d\u2640\ufe0f", "woman pouting: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 672, nil},
	{676, "\U0001f64e\U0001f3fd\u200d\u2640\ufe0f", "woman pouting: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 672, nil},
	{677, "\U0001f64e\U0001f3fe\u200d\u2640\ufe0f", "woman pouting: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 672, nil},
	{678, "\U0001f64e\U0001f3ff\u200d\u2640\ufe0f", "woman pouting: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 672, nil},
	{679, "\U0001f645", "person gesturing NO", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_gesturing_no"}},
	{680, "\U0001f645\U0001f3fb", "person gesturing NO: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 678, nil},
	{681, "\U0001f645\U0001f3fc", "person gesturing NO: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 678, nil},
	{682, "\U0001f645\U0001f3fd", "person gesturing NO: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 678, nil},
	{683, "\U0001f645\U0001f3fe", "person gesturing NO: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 678, nil},
	{684, "\U0001f645\U0001f3ff", "person gesturing NO: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 678, nil},
	{685, "\U0001f645\u200d\u2642\ufe0f", "man gesturing NO", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_gesturing_no"}},
	{686, "\U0001f645\U0001f3fb\u200d\u2642\ufe0f", "man gesturing NO: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 684, nil},
	{687, "\U0001f645\U0001f3fc\u200d\u2642\ufe0f", "man gesturing NO: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 684, nil},
	{688, "\U0001f645\U0001f3fd\u200d\u2642\ufe0f", "man gesturing NO: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 684, nil},
	{689, "\U0001f645\U0001f3fe\u200d\u2642\ufe0f", "man gesturing NO: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 684, nil},
	{690, "\U0001f645\U0001f3ff\u200d\u2642\ufe0f", "man gesturing NO: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 684, nil},
	{691, "\U0001f645\u200d\u2640\ufe0f", "woman gesturing NO", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_gesturing_no"}},
	{692, "\U0001f645\U0001f3fb\u200d\u2640\ufe0f", "woman gesturing NO: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 690, nil},
	{693, "\U0001f645\U0001f3fc\u200d\u2640\ufe0f", "woman gesturing NO: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 690, nil},
	{694, "\U0001f645\U0001f3fd\u200d\u2640\ufe0f", "woman gesturing NO: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 690, nil},
	{695, "\U0001f645\U0001f3fe\u200d\u2640\ufe0f", "woman gesturing NO: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 690, nil},
	{696, "\U0001f645\U0001f3ff\u200d\u2640\ufe0f", "woman gesturing NO: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 690, nil},
	{697, "\U0001f646", "person gesturing OK", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_gesturing_ok"}},
	{698, "\U0001f646\U0001f3fb", "person gesturing OK: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 696, nil},
	{699, "\U0001f646\U0001f3fc", "person gesturing OK: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 696, nil},
	{700, "\U0001f646\U0001f3fd", "person gesturing OK: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 696, nil},
	{701, "\U0001f646\U0001f3fe", "person gesturing OK: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 696, nil},
	{702, "\U0001f646\U0001f3ff", "person gesturing OK: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 696, nil},
	{703, "\U0001f646\u200d\u2642\ufe0f", "man gesturing OK", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_gesturing_ok"}},
	{704, "\U0001f646\U0001f3fb\u200d\u2642\ufe0f", "man gesturing OK: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 702, nil},
	{705, "\U0001f646\U0001f3fc\u200d\u2642\ufe0f", "man gesturing OK: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 702, nil},
	{706, "\U0001f646\U0001f3fd\u200d\u2642\ufe0f", "man gesturing OK: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 702, nil},
	{707, "\U0001f646\U0001f3fe\u200d\u2642\ufe0f", "man gesturing OK: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 702, nil},
	{708, "\U0001f646\U0001f3ff\u200d\u2642\ufe0f", "man gesturing OK: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 702, nil},
	{709, "\U0001f646\u200d\u2640\ufe0f", "woman gesturing OK", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_gesturing_ok"}},
	{710, "\U0001f646\U0001f3fb\u200d\u2640\ufe0f", "woman gesturing OK: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 708, nil},
	{711, "\U0001f646\U0001f3fc\u200d\u2640\ufe0f", "woman gesturing OK: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 708, nil},
	{712, "\U0001f646\U0001f3fd\u200d\u2640\ufe0f", "woman gesturing OK: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 708, nil},
	{713, "\U0001f646\U0001f3fe\u200d\u2640\ufe0f", "woman gesturing OK: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 708, nil},
	{714, "\U0001f646\U0001f3ff\u200d\u2640\ufe0f", "woman gesturing OK: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 708, nil},
	{715, "\U0001f481", "person tipping hand", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_tipping_hand"}},
	{716, "\U0001f481\U0001f3fb", "person tipping hand: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 714, nil},
	{717, "\U0001f481\U0001f3fc", "person tipping hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 714, nil},
	{718, "\U0001f481\U0001f3fd", "person tipping hand: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 714, nil},
	{719, "\U0001f481\U0001f3fe", "person tipping hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 714, nil},
	{720, "\U0001f481\U0001f3ff", "person tipping hand: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 714, nil},
	{721, "\U0001f481\u200d\u2642\ufe0f", "man tipping hand", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_tipping_hand"}},
	{722, "\U0001f481\U0001f3fb\u200d\u2642\ufe0f", "man tipping hand: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 720, nil},
	{723, "\U0001f481\U0001f3fc\u200d\u2642\ufe0f", "man tipping hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 720, nil},
	{724, "\U0001f481\U0001f3fd\u200d\u2642\ufe0f", "man tipping hand: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 720, nil},
	{725, "\U0001f481\U0001f3fe\u200d\u2642\ufe0f", "man tipping hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 720, nil},
	{726, "\U0001f481\U0001f3ff\u200d\u2642\ufe0f", "man tipping hand: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 720, nil},
	{727, "\U0001f481\u200d\u2640\ufe0f", "woman tipping hand", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_tipping_hand"}},
	{728, "\U0001f481\U0001f3fb\u200d\u2640\ufe0f", "woman tipping hand: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 726, nil},
	{729, "\U0001f481\U0001f3fc\u200d\u2640\ufe0f", "woman tipping hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 726, nil},
	{730, "\U0001f481\U0001f3fd\u200d\u2640\ufe0f", "woman tipping hand: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 726, nil},
	{731, "\U0001f481\U0001f3fe\u200d\u2640\ufe0f", "woman tipping hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 726, nil},
	{732, "\U0001f481\U0001f3ff\u200d\u2640\ufe0f", "woman tipping hand: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 726, nil},
	{733, "\U0001f64b", "person raising hand", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_raising_hand"}},
	{734, "\U0001f64b\U0001f3fb", "person raising hand: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 732, nil},
	{735, "\U0001f64b\U0001f3fc", "person raising hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 732, nil},
	{736, "\U0001f64b\U0001f3fd", "person raising hand: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 732, nil},
	{737, "\U0001f64b\U0001f3fe", "person raising hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 732, nil},
	{738, "\U0001f64b\U0001f3ff", "person raising hand: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 732, nil},
	{739, "\U0001f64b\u200d\u2642\ufe0f", "man raising hand", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_raising_hand"}},
	{740, "\U0001f64b\U0001f3fb\u200d\u2642\ufe0f", "man raising hand: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 738, nil},
	{741, "\U0001f64b\U0001f3fc\u200d\u2642\ufe0f", "man raising hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 738, nil},
	{742, "\U0001f64b\U0001f3fd\u200d\u2642\ufe0f", "man raising hand: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 738, nil},
	{743, "\U0001f64b\U0001f3fe\u200d\u2642\ufe0f", "man raising hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 738, nil},
	{744, "\U0001f64b\U0001f3ff\u200d\u2642\ufe0f", "man raising hand: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 738, nil},
	{745, "\U0001f64b\u200d\u2640\ufe0f", "woman raising hand", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_raising_hand"}},
	{746, "\U0001f64b\U0001f3fb\u200d\u2640\ufe0f", "woman raising hand: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 744, nil},
	{747, "\U0001f64b\U0001f3fc\u200d\u2640\ufe0f", "woman raising hand: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 744, nil},
	{748, "\U0001f64b\U0001f3fd\u200d\u2640\ufe0f", "woman raising hand: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 744, nil},
	{749, "\U0001f64b\U0001f3fe\u200d\u2640\ufe0f", "woman raising hand: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 744, nil},
	{750, "\U0001f64b\U0001f3ff\u200d\u2640\ufe0f", "woman raising hand: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 744, nil},
	{751, "\U0001f9cf", "deaf person", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"deaf_person"}},
	{752, "\U0001f9cf\U0001f3fb", "deaf person: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 750, nil},
	{753, "\U0001f9cf\U0001f3fc", "deaf person: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 750, nil},
	{754, "\U0001f9cf\U0001f3fd", "deaf person: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 750, nil},
	{755, "\U0001f9cf\U0001f3fe", "deaf person: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 750, nil},
	{756, "\U0001f9cf\U0001f3ff", "deaf person: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 750, nil},
	{757, "\U0001f9cf\u200d\u2642\ufe0f", "deaf man", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"deaf_man"}},
	{758, "\U0001f9cf\U0001f3fb\u200d\u2642\ufe0f", "deaf man: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 756, nil},
	{759, "\U0001f9cf\U0001f3fc\u200d\u2642\ufe0f", "deaf man: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 756, nil},
	{760, "\U0001f9cf\U0001f3fd\u200d\u2642\ufe0f", "deaf man: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 756, nil},
	{761, "\U0001f9cf\U0001f3fe\u200d\u2642\ufe0f", "deaf man: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 756, nil},
	{762, "\U0001f9cf\U0001f3ff\u200d\u2642\ufe0f", "deaf man: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 756, nil},
	{763, "\U0001f9cf\u200d\u2640\ufe0f", "deaf woman", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"deaf_woman"}},
	{764, "\U0001f9cf\U0001f3fb\u200d\u2640\ufe0f", "deaf woman: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 762, nil},
	{765, "\U0001f9cf\U0001f3fc\u200d\u2640\ufe0f", "deaf woman: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 762, nil},
	{766, "\U0001f9cf\U0001f3fd\u200d\u2640\ufe0f", "deaf woman: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 762, nil},
	{767, "\U0001f9cf\U0001f3fe\u200d\u2640\ufe0f", "deaf woman: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 762, nil},
	{768, "\U0001f9cf\U0001f3ff\u200d\u2640\ufe0f", "deaf woman: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 762, nil},
	{769, "\U0001f647", "person bowing", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_bowing"}},
	{770, "\U0001f647\U0001f3fb", "person bowing: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 768, nil},
	{771, "\U0001f647\U0001f3fc", "person bowing: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 768, nil},
	{772, "\U0001f647\U0001f3fd", "person bowing: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 768, nil},
	{773, "\U0001f647\U0001f3fe", "person bowing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 768, nil},
	{774, "\U0001f647\U0001f3ff", "person bowing: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 768, nil},
	{775, "\U0001f647\u200d\u2642\ufe0f", "man bowing", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_bowing"}},
	{776, "\U0001f647\U0001f3fb\u200d\u2642\ufe0f", "man bowing: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 774, nil},
	{777, "\U0001f647\U0001f3fc\u200d\u2642\ufe0f", "man bowing: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 774, nil},
	{778, "\U0001f647\U0001f3fd\u200d\u2642\ufe0f", "man bowing: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 774, nil},
	{779, "\U0001f647\U0001f3fe\u200d\u2642\ufe0f", "man bowing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 774, nil},
	{780, "\U0001f647\U0001f3ff\u200d\u2642\ufe0f", "man bowing: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 774, nil},
	{781, "\U0001f647\u200d\u2640\ufe0f", "woman bowing", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_bowing"}},
	{782, "\U0001f647\U0001f3fb\u200d\u2640\ufe0f", "woman bowing: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 780, nil},
	{783, "\U0001f647\U0001f3fc\u200d\u2640\ufe0f", "woman bowing: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 780, nil},
	{784, "\U0001f647\U0001f3fd\u200d\u2640\ufe0f", "woman bowing: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 780, nil},
	{785, "\U0001f647\U0001f3fe\u200d\u2640\ufe0f", "woman bowing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 780, nil},
	{786, "\U0001f647\U0001f3ff\u200d\u2640\ufe0f", "woman bowing: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 780, nil},
	{787, "\U0001f926", "person facepalming", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"person_facepalming"}},
	{788, "\U0001f926\U0001f3fb", "person facepalming: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 786, nil},
	{789, "\U0001f926\U0001f3fc", "person facepalming: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 786, nil},
	{790, "\U0001f926\U0001f3fd", "person facepalming: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 786, nil},
	{791, "\U0001f926\U0001f3fe", "person facepalming: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 786, nil},
	{792, "\U0001f926\U0001f3ff", "person facepalming: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 786, nil},
	{793, "\U0001f926\u200d\u2642\ufe0f", "man facepalming", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_facepalming"}},
	{794, "\U0001f926\U0001f3fb\u200d\u2642\ufe0f", "man facepalming: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 792, nil},
	{795, "\U0001f926\U0001f3fc\u200d\u2642\ufe0f", "man facepalming: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 792, nil},
	{796, "\U0001f926\U0001f3fd\u200d\u2642\ufe0f", "man facepalming: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 792, nil},
	{797, "\U0001f926\U0001f3fe\u200d\u2642\ufe0f", "man facepalming: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 792, nil},
	{798, "\U0001f926\U0001f3ff\u200d\u2642\ufe0f", "man facepalming: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 792, nil},
	{799, "\U0001f926\u200d\u2640\ufe0f", "woman facepalming", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_facepalming"}},
	{800, "\U0001f926\U0001f3fb\u200d\u2640\ufe0f", "woman facepalming: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 798, nil},
	{801, "\U0001f926\U0001f3fc\u200d\u2640\ufe0f", "woman facepalming: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 798, nil},
	{802, "\U0001f926\U0001f3fd\u200d\u2640\ufe0f", "woman facepalming: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 798, nil},
	{803, "\U0001f926\U0001f3fe\u200d\u2640\ufe0f", "woman facepalming: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 798, nil},
	{804, "\U0001f926\U0001f3ff\u200d\u2640\ufe0f", "woman facepalming: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 798, nil},
	{805, "\U0001f937", "person shrugging", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"person_shrugging"}},
	{806, "\U0001f937\U0001f3fb", "person shrugging: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 804, nil},
	{807, "\U0001f937\U0001f3fc", "person shrugging: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 804, nil},
	{808, "\U0001f937\U0001f3fd", "person shrugging: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 804, nil},
	{809, "\U0001f937\U0001f3fe", "person shrugging: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 804, nil},
	{810, "\U0001f937\U0001f3ff", "person shrugging: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 804, nil},
	{811, "\U0001f937\u200d\u2642\ufe0f", "man shrugging", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_shrugging"}},
	{812, "\U0001f937\U0001f3fb\u200d\u2642\ufe0f", "man shrugging: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 810, nil},
	{813, "\U0001f937\U0001f3fc\u200d\u2642\ufe0f", "man shrugging: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 810, nil},
	{814, "\U0001f937\U0001f3fd\u200d\u2642\ufe0f", "man shrugging: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 810, nil},
	{815, "\U0001f937\U0001f3fe\u200d\u2642\ufe0f", "man shrugging: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 810, nil},
	{816, "\U0001f937\U0001f3ff\u200d\u2642\ufe0f", "man shrugging: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 810, nil},
	{817, "\U0001f937\u200d\u2640\ufe0f", "woman shrugging", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_shrugging"}},
	{818, "\U0001f937\U0001f3fb\u200d\u2640\ufe0f", "woman shrugging: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 816, nil},
	{819, "\U0001f937\U0001f3fc\u200d\u2640\ufe0f", "woman shrugging: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 816, nil},
	{820, "\U0001f937\U0001f3fd\u200d\u2640\ufe0f", "woman shrugging: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 816, nil},
	{821, "\U0001f937\U0001f3fe\u200d\u2640\ufe0f", "woman shrugging: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 816, nil},
	{822, "\U0001f937\U0001f3ff\u200d\u2640\ufe0f", "woman shrugging: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 816, nil},
	{823, "\U0001f9d1\u200d\u2695\ufe0f", "health worker", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"health_worker"}},
	{824, "\U0001f9d1\U0001f3fb\u200d\u2695\ufe0f", "health worker: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 822, nil},
	{825, "\U0001f9d1\U0001f3fc\u200d\u2695\ufe0f", "health worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 822, nil},
	{826, "\U0001f9d1\U0001f3fd\u200d\u2695\ufe0f", "health worker: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 822, nil},
	{827, "\U0001f9d1\U0001f3fe\u200d\u2695\ufe0f", "health worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 822, nil},
	{828, "\U0001f9d1\U0001f3ff\u200d\u2695\ufe0f", "health worker: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 822, nil},
	{829, "\U0001f468\u200d\u2695\ufe0f", "man health worker", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_health_worker"}},
	{830, "\U0001f468\U0001f3fb\u200d\u2695\ufe0f", "man health worker: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 828, nil},
	{831, "\U0001f468\U0001f3fc\u200d\u2695\ufe0f", "man health worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 828, nil},
	{832, "\U0001f468\U0001f3fd\u200d\u2695\ufe0f", "man health worker: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 828, nil},
	{833, "\U0001f468\U0001f3fe\u200d\u2695\ufe0f", "man health worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 828, nil},
	{834, "\U0001f468\U0001f3ff\u200d\u2695\ufe0f", "man health worker: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 828, nil},
	{835, "\U0001f469\u200d\u2695\ufe0f", "woman health worker", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_health_worker"}},
	{836, "\U0001f469\U0001f3fb\u200d\u2695\ufe0f", "woman health worker: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 834, nil},
	{837, "\U0001f469\U0001f3fc\u200d\u2695\ufe0f", "woman health worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 834, nil},
	{838, "\U0001f469\U0001f3fd\u200d\u2695\ufe0f", "woman health worker: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 834, nil},
	{839, "\U0001f469\U0001f3fe\u200d\u2695\ufe0f", "woman health worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 834, nil},
	{840, "\U0001f469\U0001f3ff\u200d\u2695\ufe0f", "woman health worker: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 834, nil},
	{841, "\U0001f9d1\u200d\U0001f393", "student", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"student"}},
	{842, "\U0001f9d1\U0001f3fb\u200d\U0001f393", "student: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 840, nil},
	{843, "\U0001f9d1\U0001f3fc\u200d\U0001f393", "student: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 840, nil},
	{844, "\U0001f9d1\U0001f3fd\u200d\U0001f393", "student: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 840, nil},
	{845, "\U0001f9d1\U0001f3fe\u200d\U0001f393", "student: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 840, nil},
	{846, "\U0001f9d1\U0001f3ff\u200d\U0001f393", "student: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 840, nil},
	{847, "\U0001f468\u200d\U0001f393", "man student", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_student"}},
	{848, "\U0001f468\U0001f3fb\u200d\U0001f393", "man student: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 846, nil},
	{849, "\U0001f468\U0001f3fc\u200d\U0001f393", "man student: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 846, nil},
	{850, "\U0001f468\U0001f3fd\u200d\U0001f393", "man student: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 846, nil},
	{851, "\U0001f468\U0001f3fe\u200d\U0001f393", "man student: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 846, nil},
	{852, "\U0001f468\U0001f3ff\u200d\U0001f393", "man student: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 846, nil},
	{853, "\U0001f469\u200d\U0001f393", "woman student", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_student"}},
	{854, "\U0001f469\U0001f3fb\u200d\U0001f393", "woman student: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 852, nil},
	{855, "\U0001f469\U0001f3fc\u200d\U0001f393", "woman student: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 852, nil},
	{856, "\U0001f469\U0001f3fd\u200d\U0001f393", "woman student: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 852, nil},
	{857, "\U0001f469\U0001f3fe\u200d\U0001f393", "woman student: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 852, nil},
	{858, "\U0001f469\U0001f3ff\u200d\U0001f393", "woman student: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 852, nil},
	{859, "\U0001f9d1\u200d\U0001f3eb", "teacher", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"teacher"}},
	{860, "\U0001f9d1\U0001f3fb\u200d\U0001f3eb", "teacher: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 858, nil},
	{861, "\U0001f9d1\U0001f3fc\u200d\U0001f3eb", "teacher: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 858, nil},
	{862, "\U0001f9d1\U0001f3fd\u200d\U0001f3eb", "teacher: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 858, nil},
	{863, "\U0001f9d1\U0001f3fe\u200d\U0001f3eb", "teacher: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 858, nil},
	{864, "\U0001f9d1\U0001f3ff\u200d\U0001f3eb", "teacher: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 858, nil},
	{865, "\U0001f468\u200d\U0001f3eb", "man teacher", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_teacher"}},
	{866, "\U0001f468\U0001f3fb\u200d\U0001f3eb", "man teacher: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 864, nil},
	{867, "\U0001f468\U0001f3fc\u200d\U0001f3eb", "man teacher: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 864, nil},
	{868, "\U0001f468\U0001f3fd\u200d\U0001f3eb", "man teacher: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 864, nil},
	{869, "\U0001f468\U0001f3fe\u200d\U0001f3eb", "man teacher: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 864, nil},
	{870, "\U0001f468\U0001f3ff\u200d\U0001f3eb", "man teacher: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 864, nil},
	{871, "\U0001f469\u200d\U0001f3eb", "woman teacher", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_teacher"}},
	{872, "\U0001f469\U0001f3fb\u200d\U0001f3eb", "woman teacher: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 870, nil},
	{873, "\U0001f469\U0001f3fc\u200d\U0001f3eb", "woman teacher: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 870, nil},
	{874, "\U0001f469\U0001f3fd\u200d\U0001f3eb", "woman teacher: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 870, nil},
	{875, "\U0001f469\U0001f3fe\u200d\U0001f3eb", "woman teacher: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 870, nil},
	{876, "\U0001f469\U0001f3ff\u200d\U0001f3eb", "woman teacher: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 870, nil},
	{877, "\U0001f9d1\u200d\u2696\ufe0f", "judge", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"judge"}},
	{878, "\U0001f9d1\U0001f3fb\u200d\u2696\ufe0f", "judge: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 876, nil},
	{879, "\U0001f9d1\U0001f3fc\u200d\u2696\ufe0f", "judge: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 876, nil},
	{880, "\U0001f9d1\U0001f3fd\u200d\u2696\ufe0f", "judge: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 876, nil},
	{881, "\U0001f9d1\U0001f3fe\u200d\u2696\ufe0f", "judge: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 876, nil},
	{882, "\U0001f9d1\U0001f3ff\u200d\u2696\ufe0f", "judge: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 876, nil},
	{883, "\U0001f468\u200d\u2696\ufe0f", "man judge", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_judge"}},
	{884, "\U0001f468\U0001f3fb\u200d\u2696\ufe0f", "man judge: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 882, nil},
	{885, "\U0001f468\U0001f3fc\u200d\u2696\ufe0f", "man judge: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 882, nil},
	{886, "\U0001f468\U0001f3fd\u200d\u2696\ufe0f", "man judge: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 882, nil},
	{887, "\U0001f468\U0001f3fe\u200d\u2696\ufe0f", "man judge: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 882, nil},
	{888, "\U0001f468\U0001f3ff\u200d\u2696\ufe0f", "man judge: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 882, nil},
	{889, "\U0001f469\u200d\u2696\ufe0f", "woman judge", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_judge"}},
	{890, "\U0001f469\U0001f3fb\u200d\u2696\ufe0f", "woman judge: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 888, nil},
	{891, "\U0001f469\U0001f3fc\u200d\u2696\ufe0f", "woman judge: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 888, nil},
	{892, "\U0001f469\U0001f3fd\u200d\u2696\ufe0f", "woman judge: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 888, nil},
	{893, "\U0001f469\U0001f3fe\u200d\u2696\ufe0f", "woman judge: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 888, nil},
	{894, "\U0001f469\U0001f3ff\u200d\u2696\ufe0f", "woman judge: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 888, nil},
	{895, "\U0001f9d1\u200d\U0001f33e", "farmer", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"farmer"}},
	{896, "\U0001f9d1\U0001f3fb\u200d\U0001f33e", "farmer: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 894, nil},
	{897, "\U0001f9d1\U0001f3fc\u200d\U0001f33e", "farmer: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 894, nil},
	{898, "\U0001f9d1\U0001f3fd\u200d\U0001f33e", "farmer: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 894, nil},
	{899, "\U0001f9d1\U0001f3fe\u200d\U0001f33e", "farmer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 894, nil},
	{900, "\U0001f9d1\U0001f3ff\u200d\U0001f33e", "farmer: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 894, nil},
	{901, "\U0001f468\u200d\U0001f33e", "man farmer", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_farmer"}},
	{902, "\U0001f468\U0001f3fb\u200d\U0001f33e", "man farmer: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 900, nil},
	{903, "\U0001f468\U0001f3fc\u200d\U0001f33e", "man farmer: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 900, nil},
	{904, "\U0001f468\U0001f3fd\u200d\U0001f33e", "man farmer: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 900, nil},
	{905, "\U0001f468\U0001f3fe\u200d\U0001f33e", "man farmer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 900, nil},
	{906, "\U0001f468\U0001f3ff\u200d\U0001f33e", "man farmer: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 900, nil},
	{907, "\U0001f469\u200d\U0001f33e", "woman farmer", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_farmer"}},
	{908, "\U0001f469\U0001f3fb\u200d\U0001f33e", "woman farmer: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 906, nil},
	{909, "\U0001f469\U0001f3fc\u200d\U0001f33e", "woman farmer: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 906, nil},
	{910, "\U0001f469\U0001f3fd\u200d\U0001f33e", "woman farmer: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 906, nil},
	{911, "\U0001f469\U0001f3fe\u200d\U0001f33e", "woman farmer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 906, nil},
	{912, "\U0001f469\U0001f3ff\u200d\U0001f33e", "woman farmer: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 906, nil},
	{913, "\U0001f9d1\u200d\U0001f373", "cook", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"cook"}},
	{914, "\U0001f9d1\U0001f3fb\u200d\U0001f373", "cook: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 912, nil},
	{915, "\U0001f9d1\U0001f3fc\u200d\U0001f373", "cook: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 912, nil},
	{916, "\U0001f9d1\U0001f3fd\u200d\U0001f373", "cook: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 912, nil},
	{917, "\U0001f9d1\U0001f3fe\u200d\U0001f373", "cook: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 912, nil},
	{918, "\U0001f9d1\U0001f3ff\u200d\U0001f373", "cook: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 912, nil},
	{919, "\U0001f468\u200d\U0001f373", "man cook", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_cook"}},
	{920, "\U0001f468\U0001f3fb\u200d\U0001f373", "man cook: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 918, nil},
	{921, "\U0001f468\U0001f3fc\u200d\U0001f373", "man cook: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 918, nil},
	{922, "\U0001f468\U0001f3fd\u200d\U0001f373", "man cook: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 918, nil},
	{923, "\U0001f468\U0001f3fe\u200d\U0001f373", "man cook: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 918, nil},
	{924, "\U0001f468\U0001f3ff\u200d\U0001f373", "man cook: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 918, nil},
	{925, "\U0001f469\u200d\U0001f373", "woman cook", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_cook"}},
	{926, "\U0001f469\U0001f3fb\u200d\U0001f373", "woman cook: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 924, nil},
	{927, "\U0001f469\U0001f3fc\u200d\U0001f373", "woman cook: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 924, nil},
	{928, "\U0001f469\U0001f3fd\u200d\U0001f373", "woman cook: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 924, nil},
	{929, "\U0001f469\U0001f3fe\u200d\U0001f373", "woman cook: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 924, nil},
	{930, "\U0001f469\U0001f3ff\u200d\U0001f373", "woman cook: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 924, nil},
	{931, "\U0001f9d1\u200d\U0001f527", "mechanic", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"mechanic"}},
	{932, "\U0001f9d1\U0001f3fb\u200d\U0001f527", "mechanic: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 930, nil},
	{933, "\U0001f9d1\U0001f3fc\u200d\U0001f527", "mechanic: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 930, nil},
	{934, "\U0001f9d1\U0001f3fd\u200d\U0001f527", "mechanic: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 930, nil},
	{935, "\U0001f9d1\U0001f3fe\u200d\U0001f527", "mechanic: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 930, nil},
	{936, "\U0001f9d1\U0001f3ff\u200d\U0001f527", "mechanic: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 930, nil},
	{937, "\U0001f468\u200d\U0001f527", "man mechanic", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_mechanic"}},
	{938, "\U0001f468\U0001f3fb\u200d\U0001f527", "man mechanic: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 936, nil},
	{939, "\U0001f468\U0001f3fc\u200d\U0001f527", "man mechanic: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 936, nil},
	{940, "\U0001f468\U0001f3fd\u200d\U0001f527", "man mechanic: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 936, nil},
	{941, "\U0001f468\U0001f3fe\u200d\U0001f527", "man mechanic: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 936, nil},
	{942, "\U0001f468\U0001f3ff\u200d\U0001f527", "man mechanic: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 936, nil},
	{943, "\U0001f469\u200d\U0001f527", "woman mechanic", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_mechanic"}},
	{944, "\U0001f469\U0001f3fb\u200d\U0001f527", "woman mechanic: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 942, nil},
	{945, "\U0001f469\U0001f3fc\u200d\U0001f527", "woman mechanic: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 942, nil},
	{946, "\U0001f469\U0001f3fd\u200d\U0001f527", "woman mechanic: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 942, nil},
	{947, "\U0001f469\U0001f3fe\u200d\U0001f527", "woman mechanic: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 942, nil},
	{948, "\U0001f469\U0001f3ff\u200d\U0001f527", "woman mechanic: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 942, nil},
	{949, "\U0001f9d1\u200d\U0001f3ed", "factory worker", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"factory_worker"}},
	{950, "\U0001f9d1\U0001f3fb\u200d\U0001f3ed", "factory worker: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 948, nil},
	{951, "\U0001f9d1\U0001f3fc\u200d\U0001f3ed", "factory worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 948, nil},
	{952, "\U0001f9d1\U0001f3fd\u200d\U0001f3ed", "factory worker: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 948, nil},
	{953, "\U0001f9d1\U0001f3fe\u200d\U0001f3ed", "factory worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 948, nil},
	{954, "\U0001f9d1\U0001f3ff\u200d\U0001f3ed", "factory worker: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 948, nil},
	{955, "\U0001f468\u200d\U0001f3ed", "man factory worker", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_factory_worker"}},
	{956, "\U0001f468\U0001f3fb\u200d\U0001f3ed", "man factory worker: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 954, nil},
	{957, "\U0001f468\U0001f3fc\u200d\U0001f3ed", "man factory worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 954, nil},
	{958, "\U0001f468\U0001f3fd\u200d\U0001f3ed", "man factory worker: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 954, nil},
	{959, "\U0001f468\U0001f3fe\u200d\U0001f3ed", "man factory worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 954, nil},
	{960, "\U0001f468\U0001f3ff\u200d\U0001f3ed", "man factory worker: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 954, nil},
	{961, "\U0001f469\u200d\U0001f3ed", "woman factory worker", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_factory_worker"}},
	{962, "\U0001f469\U0001f3fb\u200d\U0001f3ed", "woman factory worker: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 960, nil},
	{963, "\U0001f469\U0001f3fc\u200d\U0001f3ed", "woman factory worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 960, nil},
	{964, "\U0001f469\U0001f3fd\u200d\U0001f3ed", "woman factory worker: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 960, nil},
	{965, "\U0001f469\U0001f3fe\u200d\U0001f3ed", "woman factory worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 960, nil},
	{966, "\U0001f469\U0001f3ff\u200d\U0001f3ed", "woman factory worker: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 960, nil},
	{967, "\U0001f9d1\u200d\U0001f4bc", "office worker", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"office_worker"}},
	{968, "\U0001f9d1\U0001f3fb\u200d\U0001f4bc", "office worker: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 966, nil},
	{969, "\U0001f9d1\U0001f3fc\u200d\U0001f4bc", "office worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 966, nil},
	{970, "\U0001f9d1\U0001f3fd\u200d\U0001f4bc", "office worker: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 966, nil},
	{971, "\U0001f9d1\U0001f3fe\u200d\U0001f4bc", "office worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 966, nil},
	{972, "\U0001f9d1\U0001f3ff\u200d\U0001f4bc", "office worker: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 966, nil},
	{973, "\U0001f468\u200d\U0001f4bc", "man office worker", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_office_worker"}},
	{974, "\U0001f468\U0001f3fb\u200d\U0001f4bc", "man office worker: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 972, nil},
	{975, "\U0001f468\U0001f3fc\u200d\U0001f4bc", "man office worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 972, nil},
	{976, "\U0001f468\U0001f3fd\u200d\U0001f4bc", "man office worker: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 972, nil},
	{977, "\U0001f468\U0001f3fe\u200d\U0001f4bc", "man office worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 972, nil},
	{978, "\U0001f468\U0001f3ff\u200d\U0001f4bc", "man office worker: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 972, nil},
	{979, "\U0001f469\u200d\U0001f4bc", "woman office worker", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_office_worker"}},
	{980, "\U0001f469\U0001f3fb\u200d\U0001f4bc", "woman office worker: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 978, nil},
	{981, "\U0001f469\U0001f3fc\u200d\U0001f4bc", "woman office worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 978, nil},
	{982, "\U0001f469\U0001f3fd\u200d\U0001f4bc", "woman office worker: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 978, nil},
	{983, "\U0001f469\U0001f3fe\u200d\U0001f4bc", "woman office worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 978, nil},
	{984, "\U0001f469\U0001f3ff\u200d\U0001f4bc", "woman office worker: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 978, nil},
	{985, "\U0001f9d1\u200d\U0001f52c", "scientist", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"scientist"}},
	{986, "\U0001f9d1\U0001f3fb\u200d\U0001f52c", "scientist: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 984, nil},
	{987, "\U0001f9d1\U0001f3fc\u200d\U0001f52c", "scientist: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 984, nil},
	{988, "\U0001f9d1\U0001f3fd\u200d\U0001f52c", "scientist: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 984, nil},
	{989, "\U0001f9d1\U0001f3fe\u200d\U0001f52c", "scientist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 984, nil},
	{990, "\U0001f9d1\U0001f3ff\u200d\U0001f52c", "scientist: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 984, nil},
	{991, "\U0001f468\u200d\U0001f52c", "man scientist", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_scientist"}},
	{992, "\U0001f468\U0001f3fb\u200d\U0001f52c", "man scientist: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 990, nil},
	{993, "\U0001f468\U0001f3fc\u200d\U0001f52c", "man scientist: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 990, nil},
	{994, "\U0001f468\U0001f3fd\u200d\U0001f52c", "man scientist: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 990, nil},
	{995, "\U0001f468\U0001f3fe\u200d\U0001f52c", "man scientist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 990, nil},
	{996, "\U0001f468\U0001f3ff\u200d\U0001f52c", "man scientist: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 990, nil},
	{997, "\U0001f469\u200d\U0001f52c", "woman scientist", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_scientist"}},
	{998, "\U0001f469\U0001f3fb\u200d\U0001f52c", "woman scientist: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 996, nil},
	{999, "\U0001f469\U0001f3fc\u200d\U0001f52c", "woman scientist: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 996, nil},
	{1000, "\U0001f469\U0001f3fd\u200d\U0001f52c", "woman scientist: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 996, nil},
	{1001, "\U0001f469\U0001f3fe\u200d\U0001f52c", "woman scientist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 996, nil},
	{1002, "\U0001f469\U0001f3ff\u200d\U0001f52c", "woman scientist: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 996, nil},
	{1003, "\U0001f9d1\u200d\U0001f4bb", "technologist", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"technologist"}},
	{1004, "\U0001f9d1\U0001f3fb\u200d\U0001f4bb", "technologist: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1002, nil},
	{1005, "\U0001f9d1\U0001f3fc\u200d\U0001f4bb", "technologist: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1002, nil},
	{1006, "\U0001f9d1\U0001f3fd\u200d\U0001f4bb", "technologist: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1002, nil},
	{1007, "\U0001f9d1\U0001f3fe\u200d\U0001f4bb", "technologist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1002, nil},
	{1008, "\U0001f9d1\U0001f3ff\u200d\U0001f4bb", "technologist: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1002, nil},
	{1009, "\U0001f468\u200d\U0001f4bb", "man technologist", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_technologist"}},
	{1010, "\U0001f468\U0001f3fb\u200d\U0001f4bb", "man technologist: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1008, nil},
	{1011, "\U0001f468\U0001f3fc\u200d\U0001f4bb", "man technologist: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1008, nil},
	{1012, "\U0001f468\U0001f3fd\u200d\U0001f4bb", "man technologist: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1008, nil},
	{1013, "\U0001f468\U0001f3fe\u200d\U0001f4bb", "man technologist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1008, nil},
	{1014, "\U0001f468\U0001f3ff\u200d\U0001f4bb", "man technologist: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1008, nil},
	{1015, "\U0001f469\u200d\U0001f4bb", "woman technologist", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_technologist"}},
	{1016, "\U0001f469\U0001f3fb\u200d\U0001f4bb", "woman technologist: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1014, nil},
	{1017, "\U0001f469\U0001f3fc\u200d\U0001f4bb", "woman technologist: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1014, nil},
	{1018, "\U0001f469\U0001f3fd\u200d\U0001f4bb", "woman technologist: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1014, nil},
	{1019, "\U0001f469\U0001f3fe\u200d\U0001f4bb", "woman technologist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1014, nil},
	{1020, "\U0001f469\U0001f3ff\u200d\U0001f4bb", "woman technologist: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1014, nil},
	{1021, "\U0001f9d1\u200d\U0001f3a4", "singer", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"singer"}},
	{1022, "\U0001f9d1\U0001f3fb\u200d\U0001f3a4", "singer: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1020, nil},
	{1023, "\U0001f9d1\U0001f3fc\u200d\U0001f3a4", "singer: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1020, nil},
	{1024, "\U0001f9d1\U0001f3fd\u200d\U0001f3a4", "singer: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1020, nil},
	{1025, "\U0001f9d1\U0001f3fe\u200d\U0001f3a4", "singer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1020, nil},
	{1026, "\U0001f9d1\U0001f3ff\u200d\U0001f3a4", "singer: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1020, nil},
	{1027, "\U0001f468\u200d\U0001f3a4", "man singer", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_singer"}},
	{1028, "\U0001f468\U0001f3fb\u200d\U0001f3a4", "man singer: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1026, nil},
	{1029, "\U0001f468\U0001f3fc\u200d\U0001f3a4", "man singer: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1026, nil},
	{1030, "\U0001f468\U0001f3fd\u200d\U0001f3a4", "man singer: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1026, nil},
	{1031, "\U0001f468\U0001f3fe\u200d\U0001f3a4", "man singer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1026, nil},
	{1032, "\U0001f468\U0001f3ff\u200d\U0001f3a4", "man singer: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1026, nil},
	{1033, "\U0001f469\u200d\U0001f3a4", "woman singer", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_singer"}},
	{1034, "\U0001f469\U0001f3fb\u200d\U0001f3a4", "woman singer: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1032, nil},
	{1035, "\U0001f469\U0001f3fc\u200d\U0001f3a4", "woman singer: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1032, nil},
	{1036, "\U0001f469\U0001f3fd\u200d\U0001f3a4", "woman singer: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1032, nil},
	{1037, "\U0001f469\U0001f3fe\u200d\U0001f3a4", "woman singer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1032, nil},
	{1038, "\U0001f469\U0001f3ff\u200d\U0001f3a4", "woman singer: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1032, nil},
	{1039, "\U0001f9d1\u200d\U0001f3a8", "artist", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"artist"}},
	{1040, "\U0001f9d1\U0001f3fb\u200d\U0001f3a8", "artist: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1038, nil},
	{1041, "\U0001f9d1\U0001f3fc\u200d\U0001f3a8", "artist: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1038, nil},
	{1042, "\U0001f9d1\U0001f3fd\u200d\U0001f3a8", "artist: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1038, nil},
	{1043, "\U0001f9d1\U0001f3fe\u200d\U0001f3a8", "artist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1038, nil},
	{1044, "\U0001f9d1\U0001f3ff\u200d\U0001f3a8", "artist: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1038, nil},
	{1045, "\U0001f468\u200d\U0001f3a8", "man artist", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_artist"}},
	{1046, "\U0001f468\U0001f3fb\u200d\U0001f3a8", "man artist: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1044, nil},
	{1047, "\U0001f468\U0001f3fc\u200d\U0001f3a8", "man artist: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1044, nil},
	{1048, "\U0001f468\U0001f3fd\u200d\U0001f3a8", "man artist: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1044, nil},
	{1049, "\U0001f468\U0001f3fe\u200d\U0001f3a8", "man artist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1044, nil},
	{1050, "\U0001f468\U0001f3ff\u200d\U0001f3a8", "man artist: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1044, nil},
	{1051, "\U0001f469\u200d\U0001f3a8", "woman artist", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_artist"}},
	{1052, "\U0001f469\U0001f3fb\u200d\U0001f3a8", "woman artist: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1050, nil},
	{1053, "\U0001f469\U0001f3fc\u200d\U0001f3a8", "woman artist: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1050, nil},
	{1054, "\U0001f469\U0001f3fd\u200d\U0001f3a8", "woman artist: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1050, nil},
	{1055, "\U0001f469\U0001f3fe\u200d\U0001f3a8", "woman artist: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1050, nil},
	{1056, "\U0001f469\U0001f3ff\u200d\U0001f3a8", "woman artist: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1050, nil},
	{1057, "\U0001f9d1\u200d\u2708\ufe0f", "pilot", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"pilot"}},
	{1058, "\U0001f9d1\U0001f3fb\u200d\u2708\ufe0f", "pilot: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1056, nil},
	{1059, "\U0001f9d1\U0001f3fc\u200d\u2708\ufe0f", "pilot: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1056, nil},
	{1060, "\U0001f9d1\U0001f3fd\u200d\u2708\ufe0f", "pilot: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1056, nil},
	{1061, "\U0001f9d1\U0001f3fe\u200d\u2708\ufe0f", "pilot: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1056, nil},
	{1062, "\U0001f9d1\U0001f3ff\u200d\u2708\ufe0f", "pilot: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1056, nil},
	{1063, "\U0001f468\u200d\u2708\ufe0f", "man pilot", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_pilot"}},
	{1064, "\U0001f468\U0001f3fb\u200d\u2708\ufe0f", "man pilot: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1062, nil},
	{1065, "\U0001f468\U0001f3fc\u200d\u2708\ufe0f", "man pilot: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1062, nil},
	{1066, "\U0001f468\U0001f3fd\u200d\u2708\ufe0f", "man pilot: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1062, nil},
	{1067, "\U0001f468\U0001f3fe\u200d\u2708\ufe0f", "man pilot: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1062, nil},
	{1068, "\U0001f468\U0001f3ff\u200d\u2708\ufe0f", "man pilot: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1062, nil},
	{1069, "\U0001f469\u200d\u2708\ufe0f", "woman pilot", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_pilot"}},
	{1070, "\U0001f469\U0001f3fb\u200d\u2708\ufe0f", "woman pilot: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1068, nil},
	{1071, "\U0001f469\U0001f3fc\u200d\u2708\ufe0f", "woman pilot: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1068, nil},
	{1072, "\U0001f469\U0001f3fd\u200d\u2708\ufe0f", "woman pilot: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1068, nil},
	{1073, "\U0001f469\U0001f3fe\u200d\u2708\ufe0f", "woman pilot: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1068, nil},
	{1074, "\U0001f469\U0001f3ff\u200d\u2708\ufe0f", "woman pilot: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1068, nil},
	{1075, "\U0001f9d1\u200d\U0001f680", "astronaut", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"astronaut"}},
	{1076, "\U0001f9d1\U0001f3fb\u200d\U0001f680", "astronaut: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1074, nil},
	{1077, "\U0001f9d1\U0001f3fc\u200d\U0001f680", "astronaut: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1074, nil},
	{1078, "\U0001f9d1\U0001f3fd\u200d\U0001f680", "astronaut: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1074, nil},
	{1079, "\U0001f9d1\U0001f3fe\u200d\U0001f680", "astronaut: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1074, nil},
	{1080, "\U0001f9d1\U0001f3ff\u200d\U0001f680", "astronaut: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1074, nil},
	{1081, "\U0001f468\u200d\U0001f680", "man astronaut", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_astronaut"}},
	{1082, "\U0001f468\U0001f3fb\u200d\U0001f680", "man astronaut: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1080, nil},
	{1083, "\U0001f468\U0001f3fc\u200d\U0001f680", "man astronaut: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1080, nil},
	{1084, "\U0001f468\U0001f3fd\u200d\U0001f680", "man astronaut: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1080, nil},
	{1085, "\U0001f468\U0001f3fe\u200d\U0001f680", "man astronaut: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1080, nil},
	{1086, "\U0001f468\U0001f3ff\u200d\U0001f680", "man astronaut: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1080, nil},
	{1087, "\U0001f469\u200d\U0001f680", "woman astronaut", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_astronaut"}},
	{1088, "\U0001f469\U0001f3fb\u200d\U0001f680", "woman astronaut: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1086, nil},
	{1089, "\U0001f469\U0001f3fc\u200d\U0001f680", "woman astronaut: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1086, nil},
	{1090, "\U0001f469\U0001f3fd\u200d\U0001f680", "woman astronaut: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1086, nil},
	{1091, "\U0001f469\U0001f3fe\u200d\U0001f680", "woman astronaut: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1086, nil},
	{1092, "\U0001f469\U0001f3ff\u200d\U0001f680", "woman astronaut: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1086, nil},
	{1093, "\U0001f9d1\u200d\U0001f692", "firefighter", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"firefighter"}},
	{1094, "\U0001f9d1\U0001f3fb\u200d\U0001f692", "firefighter: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1092, nil},
	{1095, "\U0001f9d1\U0001f3fc\u200d\U0001f692", "firefighter: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1092, nil},
	{1096, "\U0001f9d1\U0001f3fd\u200d\U0001f692", "firefighter: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1092, nil},
	{1097, "\U0001f9d1\U0001f3fe\u200d\U0001f692", "firefighter: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1092, nil},
	{1098, "\U0001f9d1\U0001f3ff\u200d\U0001f692", "firefighter: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1092, nil},
	{1099, "\U0001f468\u200d\U0001f692", "man firefighter", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_firefighter"}},
	{1100, "\U0001f468\U0001f3fb\u200d\U0001f692", "man firefighter: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1098, nil},
	{1101, "\U0001f468\U0001f3fc\u200d\U0001f692", "man firefighter: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1098, nil},
	{1102, "\U0001f468\U0001f3fd\u200d\U0001f692", "man firefighter: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1098, nil},
	{1103, "\U0001f468\U0001f3fe\u200d\U0001f692", "man firefighter: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1098, nil},
	{1104, "\U0001f468\U0001f3ff\u200d\U0001f692", "man firefighter: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1098, nil},
	{1105, "\U0001f469\u200d\U0001f692", "woman firefighter", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_firefighter"}},
	{1106, "\U0001f469\U0001f3fb\u200d\U0001f692", "woman firefighter: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1104, nil},
	{1107, "\U0001f469\U0001f3fc\u200d\U0001f692", "woman firefighter: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1104, nil},
	{1108, "\U0001f469\U0001f3fd\u200d\U0001f692", "woman firefighter: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1104, nil},
	{1109, "\U0001f469\U0001f3fe\u200d\U0001f692", "woman firefighter: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1104, nil},
	{1110, "\U0001f469\U0001f3ff\u200d\U0001f692", "woman firefighter: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1104, nil},
	{1111, "\U0001f46e", "police officer", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"police_officer"}},
	{1112, "\U0001f46e\U0001f3fb", "police officer: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1110, nil},
	{1113, "\U0001f46e\U0001f3fc", "police officer: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1110, nil},
	{1114, "\U0001f46e\U0001f3fd", "police officer: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1110, nil},
	{1115, "\U0001f46e\U0001f3fe", "police officer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1110, nil},
	{1116, "\U0001f46e\U0001f3ff", "police officer: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1110, nil},
	{1117, "\U0001f46e\u200d\u2642\ufe0f", "man police officer", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_police_officer"}},
	{1118, "\U0001f46e\U0001f3fb\u200d\u2642\ufe0f", "man police officer: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1116, nil},
	{1119, "\U0001f46e\U0001f3fc\u200d\u2642\ufe0f", "man police officer: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1116, nil},
	{1120, "\U0001f46e\U0001f3fd\u200d\u2642\ufe0f", "man police officer: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1116, nil},
	{1121, "\U0001f46e\U0001f3fe\u200d\u2642\ufe0f", "man police officer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1116, nil},
	{1122, "\U0001f46e\U0001f3ff\u200d\u2642\ufe0f", "man police officer: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1116, nil},
	{1123, "\U0001f46e\u200d\u2640\ufe0f", "woman police officer", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_police_officer"}},
	{1124, "\U0001f46e\U0001f3fb\u200d\u2640\ufe0f", "woman police officer: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1122, nil},
	{1125, "\U0001f46e\U0001f3fc\u200d\u2640\ufe0f", "woman police officer: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1122, nil},
	{1126, "\U0001f46e\U0001f3fd\u200d\u2640\ufe0f", "woman police officer: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1122, nil},
	{1127, "\U0001f46e\U0001f3fe\u200d\u2640\ufe0f", "woman police officer: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1122, nil},
	{1128, "\U0001f46e\U0001f3ff\u200d\u2640\ufe0f", "woman police officer: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1122, nil},
	{1129, "\U0001f575\ufe0f", "detective", PeopleAndBody, UnicodeVersion{0, 7}, ToneDefault, -1, []string{"detective"}},
	{1130, "\U0001f575\U0001f3fb", "detective: light skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneLight, 1128, nil},
	{1131, "\U0001f575\U0001f3fc", "detective: medium-light skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMediumLight, 1128, nil},
	{1132, "\U0001f575\U0001f3fd", "detective: medium skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMedium, 1128, nil},
	{1133, "\U0001f575\U0001f3fe", "detective: medium-dark skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMediumDark, 1128, nil},
	{1134, "\U0001f575\U0001f3ff", "detective: dark skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneDark, 1128, nil},
	{1135, "\U0001f575\ufe0f\u200d\u2642\ufe0f", "man detective", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_detective"}},
	{1136, "\U0001f575\U0001f3fb\u200d\u2642\ufe0f", "man detective: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1134, nil},
	{1137, "\U0001f575\U0001f3fc\u200d\u2642\ufe0f", "man detective: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1134, nil},
	{1138, "\U0001f575\U0001f3fd\u200d\u2642\ufe0f", "man detective: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1134, nil},
	{1139, "\U0001f575\U0001f3fe\u200d\u2642\ufe0f", "man detective: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1134, nil},
	{1140, "\U0001f575\U0001f3ff\u200d\u2642\ufe0f", "man detective: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1134, nil},
	{1141, "\U0001f575\ufe0f\u200d\u2640\ufe0f", "woman detective", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_detective"}},
	{1142, "\U0001f575\U0001f3fb\u200d\u2640\ufe0f", "woman detective: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1140, nil},
	{1143, "\U0001f575\U0001f3fc\u200d\u2640\ufe0f", "woman detective: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1140, nil},
	{1144, "\U0001f575\U0001f3fd\u200d\u2640\ufe0f", "woman detective: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1140, nil},
	{1145, "\U0001f575\U0001f3fe\u200d\u2640\ufe0f", "woman detective: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1140, nil},
	{1146, "\U0001f575\U0001f3ff\u200d\u2640\ufe0f", "woman detective: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1140, nil},
	{1147, "\U0001f482", "guard", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"guard"}},
	{1148, "\U0001f482\U0001f3fb", "guard: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1146, nil},
	{1149, "\U0001f482\U0001f3fc", "guard: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1146, nil},
	{1150, "\U0001f482\U0001f3fd", "guard: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1146, nil},
	{1151, "\U0001f482\U0001f3fe", "guard: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1146, nil},
	{1152, "\U0001f482\U0001f3ff", "guard: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1146, nil},
	{1153, "\U0001f482\u200d\u2642\ufe0f", "man guard", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_guard"}},
	{1154, "\U0001f482\U0001f3fb\u200d\u2642\ufe0f", "man guard: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1152, nil},
	{1155, "\U0001f482\U0001f3fc\u200d\u2642\ufe0f", "man guard: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1152, nil},
	{1156, "\U0001f482\U0001f3fd\u200d\u2642\ufe0f", "man guard: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1152, nil},
	{1157, "\U0001f482\U0001f3fe\u200d\u2642\ufe0f", "man guard: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1152, nil},
	{1158, "\U0001f482\U0001f3ff\u200d\u2642\ufe0f", "man guard: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1152, nil},
	{1159, "\U0001f482\u200d\u2640\ufe0f", "woman guard", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_guard"}},
	{1160, "\U0001f482\U0001f3fb\u200d\u2640\ufe0f", "woman guard: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1158, nil},
	{1161, "\U0001f482\U0001f3fc\u200d\u2640\ufe0f", "woman guard: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1158, nil},
	{1162, "\U0001f482\U0001f3fd\u200d\u2640\ufe0f", "woman guard: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1158, nil},
	{1163, "\U0001f482\U0001f3fe\u200d\u2640\ufe0f", "woman guard: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1158, nil},
	{1164, "\U0001f482\U0001f3ff\u200d\u2640\ufe0f", "woman guard: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1158, nil},
	{1165, "\U0001f977", "ninja", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"ninja"}},
	{1166, "\U0001f977\U0001f3fb", "ninja: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1164, nil},
	{1167, "\U0001f977\U0001f3fc", "ninja: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1164, nil},
	{1168, "\U0001f977\U0001f3fd", "ninja: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1164, nil},
	{1169, "\U0001f977\U0001f3fe", "ninja: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1164, nil},
	{1170, "\U0001f977\U0001f3ff", "ninja: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1164, nil},
	{1171, "\U0001f477", "construction worker", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"construction_worker"}},
	{1172, "\U0001f477\U0001f3fb", "construction worker: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1170, nil},
	{1173, "\U0001f477\U0001f3fc", "construction worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1170, nil},
	{1174, "\U0001f477\U0001f3fd", "construction worker: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1170, nil},
	{1175, "\U0001f477\U0001f3fe", "construction worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1170, nil},
	{1176, "\U0001f477\U0001f3ff", "construction worker: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1170, nil},
	{1177, "\U0001f477\u200d\u2642\ufe0f", "man construction worker", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_construction_worker"}},
	{1178, "\U0001f477\U0001f3fb\u200d\u2642\ufe0f", "man construction worker: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1176, nil},
	{1179, "\U0001f477\U0001f3fc\u200d\u2642\ufe0f", "man construction worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1176, nil},
	{1180, "\U0001f477\U0001f3fd\u200d\u2642\ufe0f", "man construction worker: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1176, nil},
	{1181, "\U0001f477\U0001f3fe\u200d\u2642\ufe0f", "man construction worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1176, nil},
	{1182, "\U0001f477\U0001f3ff\u200d\u2642\ufe0f", "man construction worker: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1176, nil},
	{1183, "\U0001f477\u200d\u2640\ufe0f", "woman construction worker", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_construction_worker"}},
	{1184, "\U0001f477\U0001f3fb\u200d\u2640\ufe0f", "woman construction worker: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1182, nil},
	{1185, "\U0001f477\U0001f3fc\u200d\u2640\ufe0f", "woman construction worker: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1182, nil},
	{1186, "\U0001f477\U0001f3fd\u200d\u2640\ufe0f", "woman construction worker: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1182, nil},
	{1187, "\U0001f477\U0001f3fe\u200d\u2640\ufe0f", "woman construction worker: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1182, nil},
	{1188, "\U0001f477\U0001f3ff\u200d\u2640\ufe0f", "woman construction worker: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1182, nil},
	{1189, "\U0001fac5", "person with crown", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"person_with_crown"}},
	{1190, "\U0001fac5\U0001f3fb", "person with crown: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 1188, nil},
	{1191, "\U0001fac5\U0001f3fc", "person with crown: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 1188, nil},
	{1192, "\U0001fac5\U0001f3fd", "person with crown: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 1188, nil},
	{1193, "\U0001fac5\U0001f3fe", "person with crown: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 1188, nil},
	{1194, "\U0001fac5\U0001f3ff", "person with crown: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 1188, nil},
	{1195, "\U0001f934", "prince", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"prince"}},
	{1196, "\U0001f934\U0001f3fb", "prince: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 1194, nil},
	{1197, "\U0001f934\U0001f3fc", "prince: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 1194, nil},
	{1198, "\U0001f934\U0001f3fd", "prince: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 1194, nil},
	{1199, "\U0001f934\U0001f3fe", "prince: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 1194, nil},
	{1200, "\U0001f934\U0001f3ff", "prince: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 1194, nil},
	{1201, "\U0001f478", "princess", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"princess"}},
	{1202, "\U0001f478\U0001f3fb", "princess: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1200, nil},
	{1203, "\U0001f478\U0001f3fc", "princess: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1200, nil},
	{1204, "\U0001f478\U0001f3fd", "princess: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1200, nil},
	{1205, "\U0001f478\U0001f3fe", "princess: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1200, nil},
	{1206, "\U0001f478\U0001f3ff", "princess: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1200, nil},
	{1207, "\U0001f473", "person wearing turban", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_wearing_turban"}},
	{1208, "\U0001f473\U0001f3fb", "person wearing turban: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1206, nil},
	{1209, "\U0001f473\U0001f3fc", "person wearing turban: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1206, nil},
	{1210, "\U0001f473\U0001f3fd", "person wearing turban: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1206, nil},
	{1211, "\U0001f473\U0001f3fe", "person wearing turban: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1206, nil},
	{1212, "\U0001f473\U0001f3ff", "person wearing turban: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1206, nil},
	{1213, "\U0001f473\u200d\u2642\ufe0f", "man wearing turban", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_wearing_turban"}},
	{1214, "\U0001f473\U0001f3fb\u200d\u2642\ufe0f", "man wearing turban: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1212, nil},
	{1215, "\U0001f473\U0001f3fc\u200d\u2642\ufe0f", "man wearing turban: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1212, nil},
	{1216, "\U0001f473\U0001f3fd\u200d\u2642\ufe0f", "man wearing turban: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1212, nil},
	{1217, "\U0001f473\U0001f3fe\u200d\u2642\ufe0f", "man wearing turban: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1212, nil},
	{1218, "\U0001f473\U0001f3ff\u200d\u2642\ufe0f", "man wearing turban: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1212, nil},
	{1219, "\U0001f473\u200d\u2640\ufe0f", "woman wearing turban", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_wearing_turban"}},
	{1220, "\U0001f473\U0001f3fb\u200d\u2640\ufe0f", "woman wearing turban: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1218, nil},
	{1221, "\U0001f473\U0001f3fc\u200d\u2640\ufe0f", "woman wearing turban: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1218, nil},
	{1222, "\U0001f473\U0001f3fd\u200d\u2640\ufe0f", "woman wearing turban: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1218, nil},
	{1223, "\U0001f473\U0001f3fe\u200d\u2640\ufe0f", "woman wearing turban: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1218, nil},
	{1224, "\U0001f473\U0001f3ff\u200d\u2640\ufe0f", "woman wearing turban: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1218, nil},
	{1225, "\U0001f472", "person with skullcap", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_with_skullcap"}},
	{1226, "\U0001f472\U0001f3fb", "person with skullcap: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1224, nil},
	{1227, "\U0001f472\U0001f3fc", "person with skullcap: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1224, nil},
	{1228, "\U0001f472\U0001f3fd", "person with skullcap: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1224, nil},
	{1229, "\U0001f472\U0001f3fe", "person with skullcap: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1224, nil},
	{1230, "\U0001f472\U0001f3ff", "person with skullcap: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1224, nil},
	{1231, "\U0001f9d5", "woman with headscarf", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"woman_with_headscarf"}},
	{1232, "\U0001f9d5\U0001f3fb", "woman with headscarf: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1230, nil},
	{1233, "\U0001f9d5\U0001f3fc", "woman with headscarf: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1230, nil},
	{1234, "\U0001f9d5\U0001f3fd", "woman with headscarf: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1230, nil},
	{1235, "\U0001f9d5\U0001f3fe", "woman with headscarf: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1230, nil},
	{1236, "\U0001f9d5\U0001f3ff", "woman with headscarf: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1230, nil},
	{1237, "\U0001f935", "person in tuxedo", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"person_in_tuxedo"}},
	{1238, "\U0001f935\U0001f3fb", "person in tuxedo: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 1236, nil},
	{1239, "\U0001f935\U0001f3fc", "person in tuxedo: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 1236, nil},
	{1240, "\U0001f935\U0001f3fd", "person in tuxedo: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 1236, nil},
	{1241, "\U0001f935\U0001f3fe", "person in tuxedo: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 1236, nil},
	{1242, "\U0001f935\U0001f3ff", "person in tuxedo: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 1236, nil},
	{1243, "\U0001f935\u200d\u2642\ufe0f", "man in tuxedo", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"man_in_tuxedo"}},
	{1244, "\U0001f935\U0001f3fb\u200d\u2642\ufe0f", "man in tuxedo: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1242, nil},
	{1245, "\U0001f935\U0001f3fc\u200d\u2642\ufe0f", "man in tuxedo: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1242, nil},
	{1246, "\U0001f935\U0001f3fd\u200d\u2642\ufe0f", "man in tuxedo: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1242, nil},
	{1247, "\U0001f935\U0001f3fe\u200d\u2642\ufe0f", "man in tuxedo: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1242, nil},
	{1248, "\U0001f935\U0001f3ff\u200d\u2642\ufe0f", "man in tuxedo: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1242, nil},
	{1249, "\U0001f935\u200d\u2640\ufe0f", "woman in tuxedo", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"woman_in_tuxedo"}},
	{1250, "\U0001f935\U0001f3fb\u200d\u2640\ufe0f", "woman in tuxedo: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1248, nil},
	{1251, "\U0001f935\U0001f3fc\u200d\u2640\ufe0f", "woman in tuxedo: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1248, nil},
	{1252, "\U0001f935\U0001f3fd\u200d\u2640\ufe0f", "woman in tuxedo: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1248, nil},
	{1253, "\U0001f935\U0001f3fe\u200d\u2640\ufe0f", "woman in tuxedo: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1248, nil},
	{1254, "\U0001f935\U0001f3ff\u200d\u2640\ufe0f", "woman in tuxedo: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1248, nil},
	{1255, "\U0001f470", "person with veil", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_with_veil"}},
	{1256, "\U0001f470\U0001f3fb", "person with veil: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1254, nil},
	{1257, "\U0001f470\U0001f3fc", "person with veil: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1254, nil},
	{1258, "\U0001f470\U0001f3fd", "person with veil: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1254, nil},
	{1259, "\U0001f470\U0001f3fe", "person with veil: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1254, nil},
	{1260, "\U0001f470\U0001f3ff", "person with veil: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1254, nil},
	{1261, "\U0001f470\u200d\u2642\ufe0f", "man with veil", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"man_with_veil"}},
	{1262, "\U0001f470\U0001f3fb\u200d\u2642\ufe0f", "man with veil: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1260, nil},
	{1263, "\U0001f470\U0001f3fc\u200d\u2642\ufe0f", "man with veil: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1260, nil},
	{1264, "\U0001f470\U0001f3fd\u200d\u2642\ufe0f", "man with veil: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1260, nil},
	{1265, "\U0001f470\U0001f3fe\u200d\u2642\ufe0f", "man with veil: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1260, nil},
	{1266, "\U0001f470\U0001f3ff\u200d\u2642\ufe0f", "man with veil: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1260, nil},
	{1267, "\U0001f470\u200d\u2640\ufe0f", "woman with veil", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"woman_with_veil"}},
	{1268, "\U0001f470\U0001f3fb\u200d\u2640\ufe0f", "woman with veil: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1266, nil},
	{1269, "\U0001f470\U0001f3fc\u200d\u2640\ufe0f", "woman with veil: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1266, nil},
	{1270, "\U0001f470\U0001f3fd\u200d\u2640\ufe0f", "woman with veil: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1266, nil},
	{1271, "\U0001f470\U0001f3fe\u200d\u2640\ufe0f", "woman with veil: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1266, nil},
	{1272, "\U0001f470\U0001f3ff\u200d\u2640\ufe0f", "woman with veil: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1266, nil},
	{1273, "\U0001f930", "pregnant woman", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"pregnant_woman"}},
	{1274, "\U0001f930\U0001f3fb", "pregnant woman: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 1272, nil},
	{1275, "\U0001f930\U0001f3fc", "pregnant woman: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 1272, nil},
	{1276, "\U0001f930\U0001f3fd", "pregnant woman: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 1272, nil},
	{1277, "\U0001f930\U0001f3fe", "pregnant woman: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 1272, nil},
	{1278, "\U0001f930\U0001f3ff", "pregnant woman: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 1272, nil},
	{1279, "\U0001fac3", "pregnant man", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"pregnant_man"}},
	{1280, "\U0001fac3\U0001f3fb", "pregnant man: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 1278, nil},
	{1281, "\U0001fac3\U0001f3fc", "pregnant man: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 1278, nil},
	{1282, "\U0001fac3\U0001f3fd", "pregnant man: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 1278, nil},
	{1283, "\U0001fac3\U0001f3fe", "pregnant man: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 1278, nil},
	{1284, "\U0001fac3\U0001f3ff", "pregnant man: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 1278, nil},
	{1285, "\U0001fac4", "pregnant person", PeopleAndBody, UnicodeVersion{14, 0}, ToneDefault, -1, []string{"pregnant_person"}},
	{1286, "\U0001fac4\U0001f3fb", "pregnant person: light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneLight, 1284, nil},
	{1287, "\U0001fac4\U0001f3fc", "pregnant person: medium-light skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumLight, 1284, nil},
	{1288, "\U0001fac4\U0001f3fd", "pregnant person: medium skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMedium, 1284, nil},
	{1289, "\U0001fac4\U0001f3fe", "pregnant person: medium-dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneMediumDark, 1284, nil},
	{1290, "\U0001fac4\U0001f3ff", "pregnant person: dark skin tone", PeopleAndBody, UnicodeVersion{14, 0}, ToneDark, 1284, nil},
	{1291, "\U0001f931", "breast-feeding", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"breast_feeding"}},
	{1292, "\U0001f931\U0001f3fb", "breast-feeding: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1290, nil},
	{1293, "\U0001f931\U0001f3fc", "breast-feeding: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1290, nil},
	{1294, "\U0001f931\U0001f3fd", "breast-feeding: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1290, nil},
	{1295, "\U0001f931\U0001f3fe", "breast-feeding: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1290, nil},
	{1296, "\U0001f931\U0001f3ff", "breast-feeding: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1290, nil},
	{1297, "\U0001f469\u200d\U0001f37c", "woman feeding baby", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"woman_feeding_baby"}},
	{1298, "\U0001f469\U0001f3fb\u200d\U0001f37c", "woman feeding baby: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1296, nil},
	{1299, "\U0001f469\U0001f3fc\u200d\U0001f37c", "woman feeding baby: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1296, nil},
	{1300, "\U0001f469\U0001f3fd\u200d\U0001f37c", "woman feeding baby: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1296, nil},
	{1301, "\U0001f469\U0001f3fe\u200d\U0001f37c", "woman feeding baby: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1296, nil},
	{1302, "\U0001f469\U0001f3ff\u200d\U0001f37c", "woman feeding baby: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1296, nil},
	{1303, "\U0001f468\u200d\U0001f37c", "man feeding baby", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"man_feeding_baby"}},
	{1304, "\U0001f468\U0001f3fb\u200d\U0001f37c", "man feeding baby: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1302, nil},
	{1305, "\U0001f468\U0001f3fc\u200d\U0001f37c", "man feeding baby: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1302, nil},
	{1306, "\U0001f468\U0001f3fd\u200d\U0001f37c", "man feeding baby: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1302, nil},
	{1307, "\U0001f468\U0001f3fe\u200d\U0001f37c", "man feeding baby: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1302, nil},
	{1308, "\U0001f468\U0001f3ff\u200d\U0001f37c", "man feeding baby: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1302, nil},
	{1309, "\U0001f9d1\u200d\U0001f37c", "person feeding baby", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"person_feeding_baby"}},
	{1310, "\U0001f9d1\U0001f3fb\u200d\U0001f37c", "person feeding baby: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1308, nil},
	{1311, "\U0001f9d1\U0001f3fc\u200d\U0001f37c", "person feeding baby: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1308, nil},
	{1312, "\U0001f9d1\U0001f3fd\u200d\U0001f37c", "person feeding baby: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1308, nil},
	{1313, "\U0001f9d1\U0001f3fe\u200d\U0001f37c", "person feeding baby: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1308, nil},
	{1314, "\U0001f9d1\U0001f3ff\u200d\U0001f37c", "person feeding baby: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1308, nil},
	{1315, "\U0001f47c", "baby angel", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"baby_angel"}},
	{1316, "\U0001f47c\U0001f3fb", "baby angel: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1314, nil},
	{1317, "\U0001f47c\U0001f3fc", "baby angel: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1314, nil},
	{1318, "\U0001f47c\U0001f3fd", "baby angel: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1314, nil},
	{1319, "\U0001f47c\U0001f3fe", "baby angel: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1314, nil},
	{1320, "\U0001f47c\U0001f3ff", "baby angel: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1314, nil},
	{1321, "\U0001f385", "Santa Claus", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"santa_claus"}},
	{1322, "\U0001f385\U0001f3fb", "Santa Claus: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1320, nil},
	{1323, "\U0001f385\U0001f3fc", "Santa Claus: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1320, nil},
	{1324, "\U0001f385\U0001f3fd", "Santa Claus: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1320, nil},
	{1325, "\U0001f385\U0001f3fe", "Santa Claus: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1320, nil},
	{1326, "\U0001f385\U0001f3ff", "Santa Claus: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1320, nil},
	{1327, "\U0001f936", "Mrs. Claus", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"mrs_claus"}},
	{1328, "\U0001f936\U0001f3fb", "Mrs. Claus: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 1326, nil},
	{1329, "\U0001f936\U0001f3fc", "Mrs. Claus: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 1326, nil},
	{1330, "\U0001f936\U0001f3fd", "Mrs. Claus: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 1326, nil},
	{1331, "\U0001f936\U0001f3fe", "Mrs. Claus: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 1326, nil},
	{1332, "\U0001f936\U0001f3ff", "Mrs. Claus: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 1326, nil},
	{1333, "\U0001f9d1\u200d\U0001f384", "mx claus", PeopleAndBody, UnicodeVersion{13, 0}, ToneDefault, -1, []string{"mx_claus"}},
	{1334, "\U0001f9d1\U0001f3fb\u200d\U0001f384", "mx claus: light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneLight, 1332, nil},
	{1335, "\U0001f9d1\U0001f3fc\u200d\U0001f384", "mx claus: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumLight, 1332, nil},
	{1336, "\U0001f9d1\U0001f3fd\u200d\U0001f384", "mx claus: medium skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMedium, 1332, nil},
	{1337, "\U0001f9d1\U0001f3fe\u200d\U0001f384", "mx claus: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneMediumDark, 1332, nil},
	{1338, "\U0001f9d1\U0001f3ff\u200d\U0001f384", "mx claus: dark skin tone", PeopleAndBody, UnicodeVersion{13, 0}, ToneDark, 1332, nil},
	{1339, "\U0001f9b8", "superhero", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"superhero"}},
	{1340, "\U0001f9b8\U0001f3fb", "superhero: light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 1338, nil},
	{1341, "\U0001f9b8\U0001f3fc", "superhero: medium-light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 1338, nil},
	{1342, "\U0001f9b8\U0001f3fd", "superhero: medium skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 1338, nil},
	{1343, "\U0001f9b8\U0001f3fe", "superhero: medium-dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 1338, nil},
	{1344, "\U0001f9b8\U0001f3ff", "superhero: dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 1338, nil},
	{1345, "\U0001f9b8\u200d\u2642\ufe0f", "man superhero", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"man_superhero"}},
	{1346, "\U0001f9b8\U0001f3fb\u200d\u2642\ufe0f", "man superhero: light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 1344, nil},
	{1347, "\U0001f9b8\U0001f3fc\u200d\u2642\ufe0f", "man superhero: medium-light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 1344, nil},
	{1348, "\U0001f9b8\U0001f3fd\u200d\u2642\ufe0f", "man superhero: medium skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 1344, nil},
	{1349, "\U0001f9b8\U0001f3fe\u200d\u2642\ufe0f", "man superhero: medium-dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 1344, nil},
	{1350, "\U0001f9b8\U0001f3ff\u200d\u2642\ufe0f", "man superhero: dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 1344, nil},
	{1351, "\U0001f9b8\u200d\u2640\ufe0f", "woman superhero", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"woman_superhero"}},
	{1352, "\U0001f9b8\U0001f3fb\u200d\u2640\ufe0f", "woman superhero: light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 1350, nil},
	{1353, "\U0001f9b8\U0001f3fc\u200d\u2640\ufe0f", "woman superhero: medium-light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 1350, nil},
	{1354, "\U0001f9b8\U0001f3fd\u200d\u2640\ufe0f", "woman superhero: medium skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 1350, nil},
	{1355, "\U0001f9b8\U0001f3fe\u200d\u2640\ufe0f", "woman superhero: medium-dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 1350, nil},
	{1356, "\U0001f9b8\U0001f3ff\u200d\u2640\ufe0f", "woman superhero: dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 1350, nil},
	{1357, "\U0001f9b9", "supervillain", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"supervillain"}},
	{1358, "\U0001f9b9\U0001f3fb", "supervillain: light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 1356, nil},
	{1359, "\U0001f9b9\U0001f3fc", "supervillain: medium-light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 1356, nil},
	{1360, "\U0001f9b9\U0001f3fd", "supervillain: medium skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 1356, nil},
	{1361, "\U0001f9b9\U0001f3fe", "supervillain: medium-dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 1356, nil},
	{1362, "\U0001f9b9\U0001f3ff", "supervillain: dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 1356, nil},
	{1363, "\U0001f9b9\u200d\u2642\ufe0f", "man supervillain", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"man_supervillain"}},
	{1364, "\U0001f9b9\U0001f3fb\u200d\u2642\ufe0f", "man supervillain: light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 1362, nil},
	{1365, "\U0001f9b9\U0001f3fc\u200d\u2642\ufe0f", "man supervillain: medium-light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 1362, nil},
	{1366, "\U0001f9b9\U0001f3fd\u200d\u2642\ufe0f", "man supervillain: medium skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 1362, nil},
	{1367, "\U0001f9b9\U0001f3fe\u200d\u2642\ufe0f", "man supervillain: medium-dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 1362, nil},
	{1368, "\U0001f9b9\U0001f3ff\u200d\u2642\ufe0f", "man supervillain: dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 1362, nil},
	{1369, "\U0001f9b9\u200d\u2640\ufe0f", "woman supervillain", PeopleAndBody, UnicodeVersion{11, 0}, ToneDefault, -1, []string{"woman_supervillain"}},
	{1370, "\U0001f9b9\U0001f3fb\u200d\u2640\ufe0f", "woman supervillain: light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneLight, 1368, nil},
	{1371, "\U0001f9b9\U0001f3fc\u200d\u2640\ufe0f", "woman supervillain: medium-light skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumLight, 1368, nil},
	{1372, "\U0001f9b9\U0001f3fd\u200d\u2640\ufe0f", "woman supervillain: medium skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMedium, 1368, nil},
	{1373, "\U0001f9b9\U0001f3fe\u200d\u2640\ufe0f", "woman supervillain: medium-dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneMediumDark, 1368, nil},
	{1374, "\U0001f9b9\U0001f3ff\u200d\u2640\ufe0f", "woman supervillain: dark skin tone", PeopleAndBody, UnicodeVersion{11, 0}, ToneDark, 1368, nil},
	{1375, "\U0001f9d9", "mage", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"mage"}},
	{1376, "\U0001f9d9\U0001f3fb", "mage: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1374, nil},
	{1377, "\U0001f9d9\U0001f3fc", "mage: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1374, nil},
	{1378, "\U0001f9d9\U0001f3fd", "mage: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1374, nil},
	{1379, "\U0001f9d9\U0001f3fe", "mage: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1374, nil},
	{1380, "\U0001f9d9\U0001f3ff", "mage: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1374, nil},
	{1381, "\U0001f9d9\u200d\u2642\ufe0f", "man mage", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"man_mage"}},
	{1382, "\U0001f9d9\U0001f3fb\u200d\u2642\ufe0f", "man mage: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1380, nil},
	{1383, "\U0001f9d9\U0001f3fc\u200d\u2642\ufe0f", "man mage: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1380, nil},
	{1384, "\U0001f9d9\U0001f3fd\u200d\u2642\ufe0f", "man mage: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1380, nil},
	{1385, "\U0001f9d9\U0001f3fe\u200d\u2642\ufe0f", "man mage: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1380, nil},
	{1386, "\U0001f9d9\U0001f3ff\u200d\u2642\ufe0f", "man mage: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1380, nil},
	{1387, "\U0001f9d9\u200d\u2640\ufe0f", "woman mage", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"woman_mage"}},
	{1388, "\U0001f9d9\U0001f3fb\u200d\u2640\ufe0f", "woman mage: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1386, nil},
	{1389, "\U0001f9d9\U0001f3fc\u200d\u2640\ufe0f", "woman mage: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1386, nil},
	{1390, "\U0001f9d9\U0001f3fd\u200d\u2640\ufe0f", "woman mage: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1386, nil},
	{1391, "\U0001f9d9\U0001f3fe\u200d\u2640\ufe0f", "woman mage: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1386, nil},
	{1392, "\U0001f9d9\U0001f3ff\u200d\u2640\ufe0f", "woman mage: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1386, nil},
	{1393, "\U0001f9da", "fairy", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"fairy"}},
	{1394, "\U0001f9da\U0001f3fb", "fairy: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1392, nil},
	{1395, "\U0001f9da\U0001f3fc", "fairy: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1392, nil},
	{1396, "\U0001f9da\U0001f3fd", "fairy: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1392, nil},
	{1397, "\U0001f9da\U0001f3fe", "fairy: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1392, nil},
	{1398, "\U0001f9da\U0001f3ff", "fairy: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1392, nil},
	{1399, "\U0001f9da\u200d\u2642\ufe0f", "man fairy", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"man_fairy"}},
	{1400, "\U0001f9da\U0001f3fb\u200d\u2642\ufe0f", "man fairy: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1398, nil},
	{1401, "\U0001f9da\U0001f3fc\u200d\u2642\ufe0f", "man fairy: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1398, nil},
	{1402, "\U0001f9da\U0001f3fd\u200d\u2642\ufe0f", "man fairy: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1398, nil},
	{1403, "\U0001f9da\U0001f3fe\u200d\u2642\ufe0f", "man fairy: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1398, nil},
	{1404, "\U0001f9da\U0001f3ff\u200d\u2642\ufe0f", "man fairy: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1398, nil},
	{1405, "\U0001f9da\u200d\u2640\ufe0f", "woman fairy", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"woman_fairy"}},
	{1406, "\U0001f9da\U0001f3fb\u200d\u2640\ufe0f", "woman fairy: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1404, nil},
	{1407, "\U0001f9da\U0001f3fc\u200d\u2640\ufe0f", "woman fairy: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1404, nil},
	{1408, "\U0001f9da\U0001f3fd\u200d\u2640\ufe0f", "woman fairy: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1404, nil},
	{1409, "\U0001f9da\U0001f3fe\u200d\u2640\ufe0f", "woman fairy: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1404, nil},
	{1410, "\U0001f9da\U0001f3ff\u200d\u2640\ufe0f", "woman fairy: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1404, nil},
	{1411, "\U0001f9db", "vampire", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"vampire"}},
	{1412, "\U0001f9db\U0001f3fb", "vampire: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1410, nil},
	{1413, "\U0001f9db\U0001f3fc", "vampire: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1410, nil},
	{1414, "\U0001f9db\U0001f3fd", "vampire: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1410, nil},
	{1415, "\U0001f9db\U0001f3fe", "vampire: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1410, nil},
	{1416, "\U0001f9db\U0001f3ff", "vampire: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1410, nil},
	{1417, "\U0001f9db\u200d\u2642\ufe0f", "man vampire", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"man_vampire"}},
	{1418, "\U0001f9db\U0001f3fb\u200d\u2642\ufe0f", "man vampire: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1416, nil},
	{1419, "\U0001f9db\U0001f3fc\u200d\u2642\ufe0f", "man vampire: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1416, nil},
	{1420, "\U0001f9db\U0001f3fd\u200d\u2642\ufe0f", "man vampire: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1416, nil},
	{1421, "\U0001f9db\U0001f3fe\u200d\u2642\ufe0f", "man vampire: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1416, nil},
	{1422, "\U0001f9db\U0001f3ff\u200d\u2642\ufe0f", "man vampire: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1416, nil},
	{1423, "\U0001f9db\u200d\u2640\ufe0f", "woman vampire", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"woman_vampire"}},
	{1424, "\U0001f9db\U0001f3fb\u200d\u2640\ufe0f", "woman vampire: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1422, nil},
	{1425, "\U0001f9db\U0001f3fc\u200d\u2640\ufe0f", "woman vampire: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1422, nil},
	{1426, "\U0001f9db\U0001f3fd\u200d\u2640\ufe0f", "woman vampire: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1422, nil},
	{1427, "\U0001f9db\U0001f3fe\u200d\u2640\ufe0f", "woman vampire: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1422, nil},
	{1428, "\U0001f9db\U0001f3ff\u200d\u2640\ufe0f", "woman vampire: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1422, nil},
	{1429, "\U0001f9dc", "merperson", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"merperson"}},
	{1430, "\U0001f9dc\U0001f3fb", "merperson: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1428, nil},
	{1431, "\U0001f9dc\U0001f3fc", "merperson: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1428, nil},
	{1432, "\U0001f9dc\U0001f3fd", "merperson: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1428, nil},
	{1433, "\U0001f9dc\U0001f3fe", "merperson: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1428, nil},
	{1434, "\U0001f9dc\U0001f3ff", "merperson: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1428, nil},
	{1435, "\U0001f9dc\u200d\u2642\ufe0f", "merman", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"merman"}},
	{1436, "\U0001f9dc\U0001f3fb\u200d\u2642\ufe0f", "merman: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1434, nil},
	{1437, "\U0001f9dc\U0001f3fc\u200d\u2642\ufe0f", "merman: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1434, nil},
	{1438, "\U0001f9dc\U0001f3fd\u200d\u2642\ufe0f", "merman: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1434, nil},
	{1439, "\U0001f9dc\U0001f3fe\u200d\u2642\ufe0f", "merman: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1434, nil},
	{1440, "\U0001f9dc\U0001f3ff\u200d\u2642\ufe0f", "merman: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1434, nil},
	{1441, "\U0001f9dc\u200d\u2640\ufe0f", "mermaid", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"mermaid"}},
	{1442, "\U0001f9dc\U0001f3fb\u200d\u2640\ufe0f", "mermaid: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1440, nil},
	{1443, "\U0001f9dc\U0001f3fc\u200d\u2640\ufe0f", "mermaid: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1440, nil},
	{1444, "\U0001f9dc\U0001f3fd\u200d\u2640\ufe0f", "mermaid: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1440, nil},
	{1445, "\U0001f9dc\U0001f3fe\u200d\u2640\ufe0f", "mermaid: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1440, nil},
	{1446, "\U0001f9dc\U0001f3ff\u200d\u2640\ufe0f", "mermaid: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1440, nil},
	{1447, "\U0001f9dd", "elf", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"elf"}},
	{1448, "\U0001f9dd\U0001f3fb", "elf: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1446, nil},
	{1449, "\U0001f9dd\U0001f3fc", "elf: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1446, nil},
	{1450, "\U0001f9dd\U0001f3fd", "elf: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1446, nil},
	{1451, "\U0001f9dd\U0001f3fe", "elf: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1446, nil},
	{1452, "\U0001f9dd\U0001f3ff", "elf: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1446, nil},
	{1453, "\U0001f9dd\u200d\u2642\ufe0f", "man elf", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"man_elf"}},
	{1454, "\U0001f9dd\U0001f3fb\u200d\u2642\ufe0f", "man elf: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1452, nil},
	{1455, "\U0001f9dd\U0001f3fc\u200d\u2642\ufe0f", "man elf: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1452, nil},
	{1456, "\U0001f9dd\U0001f3fd\u200d\u2642\ufe0f", "man elf: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1452, nil},
	{1457, "\U0001f9dd\U0001f3fe\u200d\u2642\ufe0f", "man elf: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1452, nil},
	{1458, "\U0001f9dd\U0001f3ff\u200d\u2642\ufe0f", "man elf: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1452, nil},
	{1459, "\U0001f9dd\u200d\u2640\ufe0f", "woman elf", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"woman_elf"}},
	{1460, "\U0001f9dd\U0001f3fb\u200d\u2640\ufe0f", "woman elf: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1458, nil},
	{1461, "\U0001f9dd\U0001f3fc\u200d\u2640\ufe0f", "woman elf: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1458, nil},
	{1462, "\U0001f9dd\U0001f3fd\u200d\u2640\ufe0f", "woman elf: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1458, nil},
	{1463, "\U0001f9dd\U0001f3fe\u200d\u2640\ufe0f", "woman elf: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1458, nil},
	{1464, "\U0001f9dd\U0001f3ff\u200d\u2640\ufe0f", "woman elf: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1458, nil},
	{1465, "\U0001f9de", "genie", PeopleAndBody, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"genie"}},
	{1466, "\U0001f9de\u200d\u2642\ufe0f", "man genie", PeopleAndBody, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"man_genie"}},
	{1467, "\U0001f9de\u200d\u2640\ufe0f", "woman genie", PeopleAndBody, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"woman_genie"}},
	{1468, "\U0001f9df", "zombie", PeopleAndBody, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"zombie"}},
	{1469, "\U0001f9df\u200d\u2642\ufe0f", "man zombie", PeopleAndBody, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"man_zombie"}},
	{1470, "\U0001f9df\u200d\u2640\ufe0f", "woman zombie", PeopleAndBody, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"woman_zombie"}},
	{1471, "\U0001f9cc", "troll", PeopleAndBody, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"troll"}},
	{1472, "\U0001f486", "person getting massage", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_getting_massage"}},
	{1473, "\U0001f486\U0001f3fb", "person getting massage: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1471, nil},
	{1474, "\U0001f486\U0001f3fc", "person getting massage: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1471, nil},
	{1475, "\U0001f486\U0001f3fd", "person getting massage: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1471, nil},
	{1476, "\U0001f486\U0001f3fe", "person getting massage: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1471, nil},
	{1477, "\U0001f486\U0001f3ff", "person getting massage: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1471, nil},
	{1478, "\U0001f486\u200d\u2642\ufe0f", "man getting massage", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_getting_massage"}},
	{1479, "\U0001f486\U0001f3fb\u200d\u2642\ufe0f", "man getting massage: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1477, nil},
	{1480, "\U0001f486\U0001f3fc\u200d\u2642\ufe0f", "man getting massage: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1477, nil},
	{1481, "\U0001f486\U0001f3fd\u200d\u2642\ufe0f", "man getting massage: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1477, nil},
	{1482, "\U0001f486\U0001f3fe\u200d\u2642\ufe0f", "man getting massage: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1477, nil},
	{1483, "\U0001f486\U0001f3ff\u200d\u2642\ufe0f", "man getting massage: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1477, nil},
	{1484, "\U0001f486\u200d\u2640\ufe0f", "woman getting massage", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_getting_massage"}},
	{1485, "\U0001f486\U0001f3fb\u200d\u2640\ufe0f", "woman getting massage: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1483, nil},
	{1486, "\U0001f486\U0001f3fc\u200d\u2640\ufe0f", "woman getting massage: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1483, nil},
	{1487, "\U0001f486\U0001f3fd\u200d\u2640\ufe0f", "woman getting massage: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1483, nil},
	{1488, "\U0001f486\U0001f3fe\u200d\u2640\ufe0f", "woman getting massage: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1483, nil},
	{1489, "\U0001f486\U0001f3ff\u200d\u2640\ufe0f", "woman getting massage: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1483, nil},
	{1490, "\U0001f487", "person getting haircut", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_getting_haircut"}},
	{1491, "\U0001f487\U0001f3fb", "person getting haircut: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1489, nil},
	{1492, "\U0001f487\U0001f3fc", "person getting haircut: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1489, nil},
	{1493, "\U0001f487\U0001f3fd", "person getting haircut: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1489, nil},
	{1494, "\U0001f487\U0001f3fe", "person getting haircut: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1489, nil},
	{1495, "\U0001f487\U0001f3ff", "person getting haircut: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1489, nil},
	{1496, "\U0001f487\u200d\u2642\ufe0f", "man getting haircut", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_getting_haircut"}},
	{1497, "\U0001f487\U0001f3fb\u200d\u2642\ufe0f", "man getting haircut: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1495, nil},
	{1498, "\U0001f487\U0001f3fc\u200d\u2642\ufe0f", "man getting haircut: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1495, nil},
	{1499, "\U0001f487\U0001f3fd\u200d\u2642\ufe0f", "man getting haircut: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1495, nil},
	{1500, "\U0001f487\U0001f3fe\u200d\u2642\ufe0f", "man getting haircut: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1495, nil},
	{1501, "\U0001f487\U0001f3ff\u200d\u2642\ufe0f", "man getting haircut: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1495, nil},
	{1502, "\U0001f487\u200d\u2640\ufe0f", "woman getting haircut", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_getting_haircut"}},
	{1503, "\U0001f487\U0001f3fb\u200d\u2640\ufe0f", "woman getting haircut: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1501, nil},
	{1504, "\U0001f487\U0001f3fc\u200d\u2640\ufe0f", "woman getting haircut: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1501, nil},
	{1505, "\U0001f487\U0001f3fd\u200d\u2640\ufe0f", "woman getting haircut: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1501, nil},
	{1506, "\U0001f487\U0001f3fe\u200d\u2640\ufe0f", "woman getting haircut: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1501, nil},
	{1507, "\U0001f487\U0001f3ff\u200d\u2640\ufe0f", "woman getting haircut: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1501, nil},
	{1508, "\U0001f6b6", "person walking", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_walking"}},
	{1509, "\U0001f6b6\U0001f3fb", "person walking: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1507, nil},
	{1510, "\U0001f6b6\U0001f3fc", "person walking: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1507, nil},
	{1511, "\U0001f6b6\U0001f3fd", "person walking: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1507, nil},
	{1512, "\U0001f6b6\U0001f3fe", "person walking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1507, nil},
	{1513, "\U0001f6b6\U0001f3ff", "person walking: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1507, nil},
	{1514, "\U0001f6b6\u200d\u2642\ufe0f", "man walking", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_walking"}},
	{1515, "\U0001f6b6\U0001f3fb\u200d\u2642\ufe0f", "man walking: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1513, nil},
	{1516, "\U0001f6b6\U0001f3fc\u200d\u2642\ufe0f", "man walking: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1513, nil},
	{1517, "\U0001f6b6\U0001f3fd\u200d\u2642\ufe0f", "man walking: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1513, nil},
	{1518, "\U0001f6b6\U0001f3fe\u200d\u2642\ufe0f", "man walking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1513, nil},
	{1519, "\U0001f6b6\U0001f3ff\u200d\u2642\ufe0f", "man walking: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1513, nil},
	{1520, "\U0001f6b6\u200d\u2640\ufe0f", "woman walking", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_walking"}},
	{1521, "\U0001f6b6\U0001f3fb\u200d\u2640\ufe0f", "woman walking: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1519, nil},
	{1522, "\U0001f6b6\U0001f3fc\u200d\u2640\ufe0f", "woman walking: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1519, nil},
	{1523, "\U0001f6b6\U0001f3fd\u200d\u2640\ufe0f", "woman walking: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1519, nil},
	{1524, "\U0001f6b6\U0001f3fe\u200d\u2640\ufe0f", "woman walking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1519, nil},
	{1525, "\U0001f6b6\U0001f3ff\u200d\u2640\ufe0f", "woman walking: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1519, nil},
	{1526, "\U0001f6b6\u200d\u27a1\ufe0f", "person walking facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"person_walking_facing_right"}},
	{1527, "\U0001f6b6\U0001f3fb\u200d\u27a1\ufe0f", "person walking facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1525, nil},
	{1528, "\U0001f6b6\U0001f3fc\u200d\u27a1\ufe0f", "person walking facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1525, nil},
	{1529, "\U0001f6b6\U0001f3fd\u200d\u27a1\ufe0f", "person walking facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1525, nil},
	{1530, "\U0001f6b6\U0001f3fe\u200d\u27a1\ufe0f", "person walking facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1525, nil},
	{1531, "\U0001f6b6\U0001f3ff\u200d\u27a1\ufe0f", "person walking facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1525, nil},
	{1532, "\U0001f6b6\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman walking facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"woman_walking_facing_right"}},
	{1533, "\U0001f6b6\U0001f3fb\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman walking facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1531, nil},
	{1534, "\U0001f6b6\U0001f3fc\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman walking facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1531, nil},
	{1535, "\U0001f6b6\U0001f3fd\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman walking facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1531, nil},
	{1536, "\U0001f6b6\U0001f3fe\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman walking facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1531, nil},
	{1537, "\U0001f6b6\U0001f3ff\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman walking facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1531, nil},
	{1538, "\U0001f6b6\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man walking facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"man_walking_facing_right"}},
	{1539, "\U0001f6b6\U0001f3fb\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man walking facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1537, nil},
	{1540, "\U0001f6b6\U0001f3fc\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man walking facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1537, nil},
	{1541, "\U0001f6b6\U0001f3fd\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man walking facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1537, nil},
	{1542, "\U0001f6b6\U0001f3fe\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man walking facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1537, nil},
	{1543, "\U0001f6b6\U0001f3ff\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man walking facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1537, nil},
	{1544, "\U0001f9cd", "person standing", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"person_standing"}},
	{1545, "\U0001f9cd\U0001f3fb", "person standing: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1543, nil},
	{1546, "\U0001f9cd\U0001f3fc", "person standing: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1543, nil},
	{1547, "\U0001f9cd\U0001f3fd", "person standing: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1543, nil},
	{1548, "\U0001f9cd\U0001f3fe", "person standing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1543, nil},
	{1549, "\U0001f9cd\U0001f3ff", "person standing: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1543, nil},
	{1550, "\U0001f9cd\u200d\u2642\ufe0f", "man standing", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"man_standing"}},
	{1551, "\U0001f9cd\U0001f3fb\u200d\u2642\ufe0f", "man standing: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1549, nil},
	{1552, "\U0001f9cd\U0001f3fc\u200d\u2642\ufe0f", "man standing: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1549, nil},
	{1553, "\U0001f9cd\U0001f3fd\u200d\u2642\ufe0f", "man standing: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1549, nil},
	{1554, "\U0001f9cd\U0001f3fe\u200d\u2642\ufe0f", "man standing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1549, nil},
	{1555, "\U0001f9cd\U0001f3ff\u200d\u2642\ufe0f", "man standing: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1549, nil},
	{1556, "\U0001f9cd\u200d\u2640\ufe0f", "woman standing", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"woman_standing"}},
	{1557, "\U0001f9cd\U0001f3fb\u200d\u2640\ufe0f", "woman standing: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1555, nil},
	{1558, "\U0001f9cd\U0001f3fc\u200d\u2640\ufe0f", "woman standing: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1555, nil},
	{1559, "\U0001f9cd\U0001f3fd\u200d\u2640\ufe0f", "woman standing: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1555, nil},
	{1560, "\U0001f9cd\U0001f3fe\u200d\u2640\ufe0f", "woman standing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1555, nil},
	{1561, "\U0001f9cd\U0001f3ff\u200d\u2640\ufe0f", "woman standing: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1555, nil},
	{1562, "\U0001f9ce", "person kneeling", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"person_kneeling"}},
	{1563, "\U0001f9ce\U0001f3fb", "person kneeling: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1561, nil},
	{1564, "\U0001f9ce\U0001f3fc", "person kneeling: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1561, nil},
	{1565, "\U0001f9ce\U0001f3fd", "person kneeling: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1561, nil},
	{1566, "\U0001f9ce\U0001f3fe", "person kneeling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1561, nil},
	{1567, "\U0001f9ce\U0001f3ff", "person kneeling: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1561, nil},
	{1568, "\U0001f9ce\u200d\u2642\ufe0f", "man kneeling", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"man_kneeling"}},
	{1569, "\U0001f9ce\U0001f3fb\u200d\u2642\ufe0f", "man kneeling: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1567, nil},
	{1570, "\U0001f9ce\U0001f3fc\u200d\u2642\ufe0f", "man kneeling: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1567, nil},
	{1571, "\U0001f9ce\U0001f3fd\u200d\u2642\ufe0f", "man kneeling: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1567, nil},
	{1572, "\U0001f9ce\U0001f3fe\u200d\u2642\ufe0f", "man kneeling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1567, nil},
	{1573, "\U0001f9ce\U0001f3ff\u200d\u2642\ufe0f", "man kneeling: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1567, nil},
	{1574, "\U0001f9ce\u200d\u2640\ufe0f", "woman kneeling", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"woman_kneeling"}},
	{1575, "\U0001f9ce\U0001f3fb\u200d\u2640\ufe0f", "woman kneeling: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1573, nil},
	{1576, "\U0001f9ce\U0001f3fc\u200d\u2640\ufe0f", "woman kneeling: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1573, nil},
	{1577, "\U0001f9ce\U0001f3fd\u200d\u2640\ufe0f", "woman kneeling: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1573, nil},
	{1578, "\U0001f9ce\U0001f3fe\u200d\u2640\ufe0f", "woman kneeling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1573, nil},
	{1579, "\U0001f9ce\U0001f3ff\u200d\u2640\ufe0f", "woman kneeling: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1573, nil},
	{1580, "\U0001f9ce\u200d\u27a1\ufe0f", "person kneeling facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"person_kneeling_facing_right"}},
	{1581, "\U0001f9ce\U0001f3fb\u200d\u27a1\ufe0f", "person kneeling facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1579, nil},
	{1582, "\U0001f9ce\U0001f3fc\u200d\u27a1\ufe0f", "person kneeling facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1579, nil},
	{1583, "\U0001f9ce\U0001f3fd\u200d\u27a1\ufe0f", "person kneeling facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1579, nil},
	{1584, "\U0001f9ce\U0001f3fe\u200d\u27a1\ufe0f", "person kneeling facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1579, nil},
	{1585, "\U0001f9ce\U0001f3ff\u200d\u27a1\ufe0f", "person kneeling facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1579, nil},
	{1586, "\U0001f9ce\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman kneeling facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"woman_kneeling_facing_right"}},
	{1587, "\U0001f9ce\U0001f3fb\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman kneeling facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1585, nil},
	{1588, "\U0001f9ce\U0001f3fc\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman kneeling facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1585, nil},
	{1589, "\U0001f9ce\U0001f3fd\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman kneeling facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1585, nil},
	{1590, "\U0001f9ce\U0001f3fe\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman kneeling facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1585, nil},
	{1591, "\U0001f9ce\U0001f3ff\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman kneeling facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1585, nil},
	{1592, "\U0001f9ce\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man kneeling facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"man_kneeling_facing_right"}},
	{1593, "\U0001f9ce\U0001f3fb\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man kneeling facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1591, nil},
	{1594, "\U0001f9ce\U0001f3fc\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man kneeling facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1591, nil},
	{1595, "\U0001f9ce\U0001f3fd\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man kneeling facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1591, nil},
	{1596, "\U0001f9ce\U0001f3fe\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man kneeling facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1591, nil},
	{1597, "\U0001f9ce\U0001f3ff\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man kneeling facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1591, nil},
	{1598, "\U0001f9d1\u200d\U0001f9af", "person with white cane", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"person_with_white_cane"}},
	{1599, "\U0001f9d1\U0001f3fb\u200d\U0001f9af", "person with white cane: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1597, nil},
	{1600, "\U0001f9d1\U0001f3fc\u200d\U0001f9af", "person with white cane: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1597, nil},
	{1601, "\U0001f9d1\U0001f3fd\u200d\U0001f9af", "person with white cane: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1597, nil},
	{1602, "\U0001f9d1\U0001f3fe\u200d\U0001f9af", "person with white cane: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1597, nil},
	{1603, "\U0001f9d1\U0001f3ff\u200d\U0001f9af", "person with white cane: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1597, nil},
	{1604, "\U0001f9d1\u200d\U0001f9af\u200d\u27a1\ufe0f", "person with white cane facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"person_with_white_cane_facing_right"}},
	{1605, "\U0001f9d1\U0001f3fb\u200d\U0001f9af\u200d\u27a1\ufe0f", "person with white cane facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1603, nil},
	{1606, "\U0001f9d1\U0001f3fc\u200d\U0001f9af\u200d\u27a1\ufe0f", "person with white cane facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1603, nil},
	{1607, "\U0001f9d1\U0001f3fd\u200d\U0001f9af\u200d\u27a1\ufe0f", "person with white cane facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1603, nil},
	{1608, "\U0001f9d1\U0001f3fe\u200d\U0001f9af\u200d\u27a1\ufe0f", "person with white cane facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1603, nil},
	{1609, "\U0001f9d1\U0001f3ff\u200d\U0001f9af\u200d\u27a1\ufe0f", "person with white cane facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1603, nil},
	{1610, "\U0001f468\u200d\U0001f9af", "man with white cane", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"man_with_white_cane"}},
	{1611, "\U0001f468\U0001f3fb\u200d\U0001f9af", "man with white cane: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1609, nil},
	{1612, "\U0001f468\U0001f3fc\u200d\U0001f9af", "man with white cane: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1609, nil},
	{1613, "\U0001f468\U0001f3fd\u200d\U0001f9af", "man with white cane: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1609, nil},
	{1614, "\U0001f468\U0001f3fe\u200d\U0001f9af", "man with white cane: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1609, nil},
	{1615, "\U0001f468\U0001f3ff\u200d\U0001f9af", "man with white cane: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1609, nil},
	{1616, "\U0001f468\u200d\U0001f9af\u200d\u27a1\ufe0f", "man with white cane facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"man_with_white_cane_facing_right"}},
	{1617, "\U0001f468\U0001f3fb\u200d\U0001f9af\u200d\u27a1\ufe0f", "man with white cane facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1615, nil},
	{1618, "\U0001f468\U0001f3fc\u200d\U0001f9af\u200d\u27a1\ufe0f", "man with white cane facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1615, nil},
	{1619, "\U0001f468\U0001f3fd\u200d\U0001f9af\u200d\u27a1\ufe0f", "man with white cane facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1615, nil},
	{1620, "\U0001f468\U0001f3fe\u200d\U0001f9af\u200d\u27a1\ufe0f", "man with white cane facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1615, nil},
	{1621, "\U0001f468\U0001f3ff\u200d\U0001f9af\u200d\u27a1\ufe0f", "man with white cane facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1615, nil},
	{1622, "\U0001f469\u200d\U0001f9af", "woman with white cane", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"woman_with_white_cane"}},
	{1623, "\U0001f469\U0001f3fb\u200d\U0001f9af", "woman with white cane: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1621, nil},
	{1624, "\U0001f469\U0001f3fc\u200d\U0001f9af", "woman with white cane: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1621, nil},
	{1625, "\U0001f469\U0001f3fd\u200d\U0001f9af", "woman with white cane: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1621, nil},
	{1626, "\U0001f469\U0001f3fe\u200d\U0001f9af", "woman with white cane: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1621, nil},
	{1627, "\U0001f469\U0001f3ff\u200d\U0001f9af", "woman with white cane: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1621, nil},
	{1628, "\U0001f469\u200d\U0001f9af\u200d\u27a1\ufe0f", "woman with white cane facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"woman_with_white_cane_facing_right"}},
	{1629, "\U0001f469\U0001f3fb\u200d\U0001f9af\u200d\u27a1\ufe0f", "woman with white cane facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1627, nil},
	{1630, "\U0001f469\U0001f3fc\u200d\U0001f9af\u200d\u27a1\ufe0f", "woman with white cane facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1627, nil},
	{1631, "\U0001f469\U0001f3fd\u200d\U0001f9af\u200d\u27a1\ufe0f", "woman with white cane facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1627, nil},
	{1632, "\U0001f469\U0001f3fe\u200d\U0001f9af\u200d\u27a1\ufe0f", "woman with white cane facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1627, nil},
	{1633, "\U0001f469\U0001f3ff\u200d\U0001f9af\u200d\u27a1\ufe0f", "woman with white cane facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1627, nil},
	{1634, "\U0001f9d1\u200d\U0001f9bc", "person in motorized wheelchair", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"person_in_motorized_wheelchair"}},
	{1635, "\U0001f9d1\U0001f3fb\u200d\U0001f9bc", "person in motorized wheelchair: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1633, nil},
	{1636, "\U0001f9d1\U0001f3fc\u200d\U0001f9bc", "person in motorized wheelchair: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1633, nil},
	{1637, "\U0001f9d1\U0001f3fd\u200d\U0001f9bc", "person in motorized wheelchair: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1633, nil},
	{1638, "\U0001f9d1\U0001f3fe\u200d\U0001f9bc", "person in motorized wheelchair: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1633, nil},
	{1639, "\U0001f9d1\U0001f3ff\u200d\U0001f9bc", "person in motorized wheelchair: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1633, nil},
	{1640, "\U0001f9d1\u200d\U0001f9bc\u200d\u27a1\ufe0f", "person in motorized wheelchair facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"person_in_motorized_wheelchair_facing_right"}},
	{1641, "\U0001f9d1\U0001f3fb\u200d\U0001f9bc\u200d\u27a1\ufe0f", "person in motorized wheelchair facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1639, nil},
	{1642, "\U0001f9d1\U0001f3fc\u200d\U0001f9bc\u200d\u27a1\ufe0f", "person in motorized wheelchair facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1639, nil},
	{1643, "\U0001f9d1\U0001f3fd\u200d\U0001f9bc\u200d\u27a1\ufe0f", "person in motorized wheelchair facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1639, nil},
	{1644, "\U0001f9d1\U0001f3fe\u200d\U0001f9bc\u200d\u27a1\ufe0f", "person in motorized wheelchair facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1639, nil},
	{1645, "\U0001f9d1\U0001f3ff\u200d\U0001f9bc\u200d\u27a1\ufe0f", "person in motorized wheelchair facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1639, nil},
	{1646, "\U0001f468\u200d\U0001f9bc", "man in motorized wheelchair", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"man_in_motorized_wheelchair"}},
	{1647, "\U0001f468\U0001f3fb\u200d\U0001f9bc", "man in motorized wheelchair: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1645, nil},
	{1648, "\U0001f468\U0001f3fc\u200d\U0001f9bc", "man in motorized wheelchair: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1645, nil},
	{1649, "\U0001f468\U0001f3fd\u200d\U0001f9bc", "man in motorized wheelchair: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1645, nil},
	{1650, "\U0001f468\U0001f3fe\u200d\U0001f9bc", "man in motorized wheelchair: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1645, nil},
	{1651, "\U0001f468\U0001f3ff\u200d\U0001f9bc", "man in motorized wheelchair: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1645, nil},
	{1652, "\U0001f468\u200d\U0001f9bc\u200d\u27a1\ufe0f", "man in motorized wheelchair facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"man_in_motorized_wheelchair_facing_right"}},
	{1653, "\U0001f468\U0001f3fb\u200d\U0001f9bc\u200d\u27a1\ufe0f", "man in motorized wheelchair facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1651, nil},
	{1654, "\U0001f468\U0001f3fc\u200d\U0001f9bc\u200d\u27a1\ufe0f", "man in motorized wheelchair facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1651, nil},
	{1655, "\U0001f468\U0001f3fd\u200d\U0001f9bc\u200d\u27a1\ufe0f", "man in motorized wheelchair facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1651, nil},
	{1656, "\U0001f468\U0001f3fe\u200d\U0001f9bc\u200d\u27a1\ufe0f", "man in motorized wheelchair facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1651, nil},
	{1657, "\U0001f468\U0001f3ff\u200d\U0001f9bc\u200d\u27a1\ufe0f", "man in motorized wheelchair facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1651, nil},
	{1658, "\U0001f469\u200d\U0001f9bc", "woman in motorized wheelchair", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"woman_in_motorized_wheelchair"}},
	{1659, "\U0001f469\U0001f3fb\u200d\U0001f9bc", "woman in motorized wheelchair: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1657, nil},
	{1660, "\U0001f469\U0001f3fc\u200d\U0001f9bc", "woman in motorized wheelchair: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1657, nil},
	{1661, "\U0001f469\U0001f3fd\u200d\U0001f9bc", "woman in motorized wheelchair: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1657, nil},
	{1662, "\U0001f469\U0001f3fe\u200d\U0001f9bc", "woman in motorized wheelchair: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1657, nil},
	{1663, "\U0001f469\U0001f3ff\u200d\U0001f9bc", "woman in motorized wheelchair: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1657, nil},
	{1664, "\U0001f469\u200d\U0001f9bc\u200d\u27a1\ufe0f", "woman in motorized wheelchair facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"woman_in_motorized_wheelchair_facing_right"}},
	{1665, "\U0001f469\U0001f3fb\u200d\U0001f9bc\u200d\u27a1\ufe0f", "woman in motorized wheelchair facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1663, nil},
	{1666, "\U0001f469\U0001f3fc\u200d\U0001f9bc\u200d\u27a1\ufe0f", "woman in motorized wheelchair facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1663, nil},
	{1667, "\U0001f469\U0001f3fd\u200d\U0001f9bc\u200d\u27a1\ufe0f", "woman in motorized wheelchair facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1663, nil},
	{1668, "\U0001f469\U0001f3fe\u200d\U0001f9bc\u200d\u27a1\ufe0f", "woman in motorized wheelchair facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1663, nil},
	{1669, "\U0001f469\U0001f3ff\u200d\U0001f9bc\u200d\u27a1\ufe0f", "woman in motorized wheelchair facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1663, nil},
	{1670, "\U0001f9d1\u200d\U0001f9bd", "person in manual wheelchair", PeopleAndBody, UnicodeVersion{12, 1}, ToneDefault, -1, []string{"person_in_manual_wheelchair"}},
	{1671, "\U0001f9d1\U0001f3fb\u200d\U0001f9bd", "person in manual wheelchair: light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneLight, 1669, nil},
	{1672, "\U0001f9d1\U0001f3fc\u200d\U0001f9bd", "person in manual wheelchair: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumLight, 1669, nil},
	{1673, "\U0001f9d1\U0001f3fd\u200d\U0001f9bd", "person in manual wheelchair: medium skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMedium, 1669, nil},
	{1674, "\U0001f9d1\U0001f3fe\u200d\U0001f9bd", "person in manual wheelchair: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneMediumDark, 1669, nil},
	{1675, "\U0001f9d1\U0001f3ff\u200d\U0001f9bd", "person in manual wheelchair: dark skin tone", PeopleAndBody, UnicodeVersion{12, 1}, ToneDark, 1669, nil},
	{1676, "\U0001f9d1\u200d\U0001f9bd\u200d\u27a1\ufe0f", "person in manual wheelchair facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"person_in_manual_wheelchair_facing_right"}},
	{1677, "\U0001f9d1\U0001f3fb\u200d\U0001f9bd\u200d\u27a1\ufe0f", "person in manual wheelchair facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1675, nil},
	{1678, "\U0001f9d1\U0001f3fc\u200d\U0001f9bd\u200d\u27a1\ufe0f", "person in manual wheelchair facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1675, nil},
	{1679, "\U0001f9d1\U0001f3fd\u200d\U0001f9bd\u200d\u27a1\ufe0f", "person in manual wheelchair facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1675, nil},
	{1680, "\U0001f9d1\U0001f3fe\u200d\U0001f9bd\u200d\u27a1\ufe0f", "person in manual wheelchair facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1675, nil},
	{1681, "\U0001f9d1\U0001f3ff\u200d\U0001f9bd\u200d\u27a1\ufe0f", "person in manual wheelchair facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1675, nil},
	{1682, "\U0001f468\u200d\U0001f9bd", "man in manual wheelchair", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"man_in_manual_wheelchair"}},
	{1683, "\U0001f468\U0001f3fb\u200d\U0001f9bd", "man in manual wheelchair: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1681, nil},
	{1684, "\U0001f468\U0001f3fc\u200d\U0001f9bd", "man in manual wheelchair: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1681, nil},
	{1685, "\U0001f468\U0001f3fd\u200d\U0001f9bd", "man in manual wheelchair: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1681, nil},
	{1686, "\U0001f468\U0001f3fe\u200d\U0001f9bd", "man in manual wheelchair: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1681, nil},
	{1687, "\U0001f468\U0001f3ff\u200d\U0001f9bd", "man in manual wheelchair: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1681, nil},
	{1688, "\U0001f468\u200d\U0001f9bd\u200d\u27a1\ufe0f", "man in manual wheelchair facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"man_in_manual_wheelchair_facing_right"}},
	{1689, "\U0001f468\U0001f3fb\u200d\U0001f9bd\u200d\u27a1\ufe0f", "man in manual wheelchair facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1687, nil},
	{1690, "\U0001f468\U0001f3fc\u200d\U0001f9bd\u200d\u27a1\ufe0f", "man in manual wheelchair facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1687, nil},
	{1691, "\U0001f468\U0001f3fd\u200d\U0001f9bd\u200d\u27a1\ufe0f", "man in manual wheelchair facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1687, nil},
	{1692, "\U0001f468\U0001f3fe\u200d\U0001f9bd\u200d\u27a1\ufe0f", "man in manual wheelchair facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1687, nil},
	{1693, "\U0001f468\U0001f3ff\u200d\U0001f9bd\u200d\u27a1\ufe0f", "man in manual wheelchair facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1687, nil},
	{1694, "\U0001f469\u200d\U0001f9bd", "woman in manual wheelchair", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"woman_in_manual_wheelchair"}},
	{1695, "\U0001f469\U0001f3fb\u200d\U0001f9bd", "woman in manual wheelchair: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 1693, nil},
	{1696, "\U0001f469\U0001f3fc\u200d\U0001f9bd", "woman in manual wheelchair: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 1693, nil},
	{1697, "\U0001f469\U0001f3fd\u200d\U0001f9bd", "woman in manual wheelchair: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 1693, nil},
	{1698, "\U0001f469\U0001f3fe\u200d\U0001f9bd", "woman in manual wheelchair: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 1693, nil},
	{1699, "\U0001f469\U0001f3ff\u200d\U0001f9bd", "woman in manual wheelchair: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 1693, nil},
	{1700, "\U0001f469\u200d\U0001f9bd\u200d\u27a1\ufe0f", "woman in manual wheelchair facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"woman_in_manual_wheelchair_facing_right"}},
	{1701, "\U0001f469\U0001f3fb\u200d\U0001f9bd\u200d\u27a1\ufe0f", "woman in manual wheelchair facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1699, nil},
	{1702, "\U0001f469\U0001f3fc\u200d\U0001f9bd\u200d\u27a1\ufe0f", "woman in manual wheelchair facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1699, nil},
	{1703, "\U0001f469\U0001f3fd\u200d\U0001f9bd\u200d\u27a1\ufe0f", "woman in manual wheelchair facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1699, nil},
	{1704, "\U0001f469\U0001f3fe\u200d\U0001f9bd\u200d\u27a1\ufe0f", "woman in manual wheelchair facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1699, nil},
	{1705, "\U0001f469\U0001f3ff\u200d\U0001f9bd\u200d\u27a1\ufe0f", "woman in manual wheelchair facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1699, nil},
	{1706, "\U0001f3c3", "person running", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_running"}},
	{1707, "\U0001f3c3\U0001f3fb", "person running: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1705, nil},
	{1708, "\U0001f3c3\U0001f3fc", "person running: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1705, nil},
	{1709, "\U0001f3c3\U0001f3fd", "person running: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1705, nil},
	{1710, "\U0001f3c3\U0001f3fe", "person running: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1705, nil},
	{1711, "\U0001f3c3\U0001f3ff", "person running: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1705, nil},
	{1712, "\U0001f3c3\u200d\u2642\ufe0f", "man running", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_running"}},
	{1713, "\U0001f3c3\U0001f3fb\u200d\u2642\ufe0f", "man running: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1711, nil},
	{1714, "\U0001f3c3\U0001f3fc\u200d\u2642\ufe0f", "man running: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1711, nil},
	{1715, "\U0001f3c3\U0001f3fd\u200d\u2642\ufe0f", "man running: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1711, nil},
	{1716, "\U0001f3c3\U0001f3fe\u200d\u2642\ufe0f", "man running: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1711, nil},
	{1717, "\U0001f3c3\U0001f3ff\u200d\u2642\ufe0f", "man running: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1711, nil},
	{1718, "\U0001f3c3\u200d\u2640\ufe0f", "woman running", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_running"}},
	{1719, "\U0001f3c3\U0001f3fb\u200d\u2640\ufe0f", "woman running: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1717, nil},
	{1720, "\U0001f3c3\U0001f3fc\u200d\u2640\ufe0f", "woman running: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1717, nil},
	{1721, "\U0001f3c3\U0001f3fd\u200d\u2640\ufe0f", "woman running: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1717, nil},
	{1722, "\U0001f3c3\U0001f3fe\u200d\u2640\ufe0f", "woman running: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1717, nil},
	{1723, "\U0001f3c3\U0001f3ff\u200d\u2640\ufe0f", "woman running: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1717, nil},
	{1724, "\U0001f3c3\u200d\u27a1\ufe0f", "person running facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"person_running_facing_right"}},
	{1725, "\U0001f3c3\U0001f3fb\u200d\u27a1\ufe0f", "person running facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1723, nil},
	{1726, "\U0001f3c3\U0001f3fc\u200d\u27a1\ufe0f", "person running facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1723, nil},
	{1727, "\U0001f3c3\U0001f3fd\u200d\u27a1\ufe0f", "person running facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1723, nil},
	{1728, "\U0001f3c3\U0001f3fe\u200d\u27a1\ufe0f", "person running facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1723, nil},
	{1729, "\U0001f3c3\U0001f3ff\u200d\u27a1\ufe0f", "person running facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1723, nil},
	{1730, "\U0001f3c3\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman running facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"woman_running_facing_right"}},
	{1731, "\U0001f3c3\U0001f3fb\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman running facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1729, nil},
	{1732, "\U0001f3c3\U0001f3fc\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman running facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1729, nil},
	{1733, "\U0001f3c3\U0001f3fd\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman running facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1729, nil},
	{1734, "\U0001f3c3\U0001f3fe\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman running facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1729, nil},
	{1735, "\U0001f3c3\U0001f3ff\u200d\u2640\ufe0f\u200d\u27a1\ufe0f", "woman running facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1729, nil},
	{1736, "\U0001f3c3\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man running facing right", PeopleAndBody, UnicodeVersion{15, 1}, ToneDefault, -1, []string{"man_running_facing_right"}},
	{1737, "\U0001f3c3\U0001f3fb\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man running facing right: light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneLight, 1735, nil},
	{1738, "\U0001f3c3\U0001f3fc\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man running facing right: medium-light skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumLight, 1735, nil},
	{1739, "\U0001f3c3\U0001f3fd\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man running facing right: medium skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMedium, 1735, nil},
	{1740, "\U0001f3c3\U0001f3fe\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man running facing right: medium-dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneMediumDark, 1735, nil},
	{1741, "\U0001f3c3\U0001f3ff\u200d\u2642\ufe0f\u200d\u27a1\ufe0f", "man running facing right: dark skin tone", PeopleAndBody, UnicodeVersion{15, 1}, ToneDark, 1735, nil},
	{1742, "\U0001f483", "woman dancing", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"woman_dancing"}},
	{1743, "\U0001f483\U0001f3fb", "woman dancing: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1741, nil},
	{1744, "\U0001f483\U0001f3fc", "woman dancing: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1741, nil},
	{1745, "\U0001f483\U0001f3fd", "woman dancing: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1741, nil},
	{1746, "\U0001f483\U0001f3fe", "woman dancing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1741, nil},
	{1747, "\U0001f483\U0001f3ff", "woman dancing: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1741, nil},
	{1748, "\U0001f57a", "man dancing", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"man_dancing"}},
	{1749, "\U0001f57a\U0001f3fb", "man dancing: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 1747, nil},
	{1750, "\U0001f57a\U0001f3fc", "man dancing: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 1747, nil},
	{1751, "\U0001f57a\U0001f3fd", "man dancing: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 1747, nil},
	{1752, "\U0001f57a\U0001f3fe", "man dancing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 1747, nil},
	{1753, "\U0001f57a\U0001f3ff", "man dancing: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 1747, nil},
	{1754, "\U0001f574\ufe0f", "person in suit levitating", PeopleAndBody, UnicodeVersion{0, 7}, ToneDefault, -1, []string{"person_in_suit_levitating"}},
	{1755, "\U0001f574\U0001f3fb", "person in suit levitating: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1753, nil},
	{1756, "\U0001f574\U0001f3fc", "person in suit levitating: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1753, nil},
	{1757, "\U0001f574\U0001f3fd", "person in suit levitating: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1753, nil},
	{1758, "\U0001f574\U0001f3fe", "person in suit levitating: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1753, nil},
	{1759, "\U0001f574\U0001f3ff", "person in suit levitating: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1753, nil},
	{1760, "\U0001f46f", "people with bunny ears", PeopleAndBody, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"people_with_bunny_ears"}},
	{1761, "\U0001f46f\u200d\u2642\ufe0f", "men with bunny ears", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"men_with_bunny_ears"}},
	{1762, "\U0001f46f\u200d\u2640\ufe0f", "women with bunny ears", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"women_with_bunny_ears"}},
	{1763, "\U0001f9d6", "person in steamy room", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"person_in_steamy_room"}},
	{1764, "\U0001f9d6\U0001f3fb", "person in steamy room: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1762, nil},
	{1765, "\U0001f9d6\U0001f3fc", "person in steamy room: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1762, nil},
	{1766, "\U0001f9d6\U0001f3fd", "person in steamy room: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1762, nil},
	{1767, "\U0001f9d6\U0001f3fe", "person in steamy room: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1762, nil},
	{1768, "\U0001f9d6\U0001f3ff", "person in steamy room: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1762, nil},
	{1769, "\U0001f9d6\u200d\u2642\ufe0f", "man in steamy room", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"man_in_steamy_room"}},
	{1770, "\U0001f9d6\U0001f3fb\u200d\u2642\ufe0f", "man in steamy room: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1768, nil},
	{1771, "\U0001f9d6\U0001f3fc\u200d\u2642\ufe0f", "man in steamy room: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1768, nil},
	{1772, "\U0001f9d6\U0001f3fd\u200d\u2642\ufe0f", "man in steamy room: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1768, nil},
	{1773, "\U0001f9d6\U0001f3fe\u200d\u2642\ufe0f", "man in steamy room: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1768, nil},
	{1774, "\U0001f9d6\U0001f3ff\u200d\u2642\ufe0f", "man in steamy room: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1768, nil},
	{1775, "\U0001f9d6\u200d\u2640\ufe0f", "woman in steamy room", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"woman_in_steamy_room"}},
	{1776, "\U0001f9d6\U0001f3fb\u200d\u2640\ufe0f", "woman in steamy room: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1774, nil},
	{1777, "\U0001f9d6\U0001f3fc\u200d\u2640\ufe0f", "woman in steamy room: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1774, nil},
	{1778, "\U0001f9d6\U0001f3fd\u200d\u2640\ufe0f", "woman in steamy room: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1774, nil},
	{1779, "\U0001f9d6\U0001f3fe\u200d\u2640\ufe0f", "woman in steamy room: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1774, nil},
	{1780, "\U0001f9d6\U0001f3ff\u200d\u2640\ufe0f", "woman in steamy room: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1774, nil},
	{1781, "\U0001f9d7", "person climbing", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"person_climbing"}},
	{1782, "\U0001f9d7\U0001f3fb", "person climbing: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1780, nil},
	{1783, "\U0001f9d7\U0001f3fc", "person climbing: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1780, nil},
	{1784, "\U0001f9d7\U0001f3fd", "person climbing: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1780, nil},
	{1785, "\U0001f9d7\U0001f3fe", "person climbing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1780, nil},
	{1786, "\U0001f9d7\U0001f3ff", "person climbing: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1780, nil},
	{1787, "\U0001f9d7\u200d\u2642\ufe0f", "man climbing", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"man_climbing"}},
	{1788, "\U0001f9d7\U0001f3fb\u200d\u2642\ufe0f", "man climbing: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1786, nil},
	{1789, "\U0001f9d7\U0001f3fc\u200d\u2642\ufe0f", "man climbing: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1786, nil},
	{1790, "\U0001f9d7\U0001f3fd\u200d\u2642\ufe0f", "man climbing: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1786, nil},
	{1791, "\U0001f9d7\U0001f3fe\u200d\u2642\ufe0f", "man climbing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1786, nil},
	{1792, "\U0001f9d7\U0001f3ff\u200d\u2642\ufe0f", "man climbing: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1786, nil},
	{1793, "\U0001f9d7\u200d\u2640\ufe0f", "woman climbing", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"woman_climbing"}},
	{1794, "\U0001f9d7\U0001f3fb\u200d\u2640\ufe0f", "woman climbing: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 1792, nil},
	{1795, "\U0001f9d7\U0001f3fc\u200d\u2640\ufe0f", "woman climbing: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 1792, nil},
	{1796, "\U0001f9d7\U0001f3fd\u200d\u2640\ufe0f", "woman climbing: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 1792, nil},
	{1797, "\U0001f9d7\U0001f3fe\u200d\u2640\ufe0f", "woman climbing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 1792, nil},
	{1798, "\U0001f9d7\U0001f3ff\u200d\u2640\ufe0f", "woman climbing: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 1792, nil},
	{1799, "\U0001f93a", "person fencing", PeopleAndBody, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"person_fencing"}},
	{1800, "\U0001f3c7", "horse racing", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"horse_racing"}},
	{1801, "\U0001f3c7\U0001f3fb", "horse racing: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1799, nil},
	{1802, "\U0001f3c7\U0001f3fc", "horse racing: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1799, nil},
	{1803, "\U0001f3c7\U0001f3fd", "horse racing: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1799, nil},
	{1804, "\U0001f3c7\U0001f3fe", "horse racing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1799, nil},
	{1805, "\U0001f3c7\U0001f3ff", "horse racing: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1799, nil},
	{1806, "\u26f7\ufe0f", "skier", PeopleAndBody, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"skier"}},
	{1807, "\U0001f3c2", "snowboarder", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"snowboarder"}},
	{1808, "\U0001f3c2\U0001f3fb", "snowboarder: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1806, nil},
	{1809, "\U0001f3c2\U0001f3fc", "snowboarder: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1806, nil},
	{1810, "\U0001f3c2\U0001f3fd", "snowboarder: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1806, nil},
	{1811, "\U0001f3c2\U0001f3fe", "snowboarder: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1806, nil},
	{1812, "\U0001f3c2\U0001f3ff", "snowboarder: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1806, nil},
	{1813, "\U0001f3cc\ufe0f", "person golfing", PeopleAndBody, UnicodeVersion{0, 7}, ToneDefault, -1, []string{"person_golfing"}},
	{1814, "\U0001f3cc\U0001f3fb", "person golfing: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1812, nil},
	{1815, "\U0001f3cc\U0001f3fc", "person golfing: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1812, nil},
	{1816, "\U0001f3cc\U0001f3fd", "person golfing: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1812, nil},
	{1817, "\U0001f3cc\U0001f3fe", "person golfing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1812, nil},
	{1818, "\U0001f3cc\U0001f3ff", "person golfing: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1812, nil},
	{1819, "\U0001f3cc\ufe0f\u200d\u2642\ufe0f", "man golfing", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_golfing"}},
	{1820, "\U0001f3cc\U0001f3fb\u200d\u2642\ufe0f", "man golfing: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1818, nil},
	{1821, "\U0001f3cc\U0001f3fc\u200d\u2642\ufe0f", "man golfing: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1818, nil},
	{1822, "\U0001f3cc\U0001f3fd\u200d\u2642\ufe0f", "man golfing: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1818, nil},
	{1823, "\U0001f3cc\U0001f3fe\u200d\u2642\ufe0f", "man golfing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1818, nil},
	{1824, "\U0001f3cc\U0001f3ff\u200d\u2642\ufe0f", "man golfing: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1818, nil},
	{1825, "\U0001f3cc\ufe0f\u200d\u2640\ufe0f", "woman golfing", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_golfing"}},
	{1826, "\U0001f3cc\U0001f3fb\u200d\u2640\ufe0f", "woman golfing: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1824, nil},
	{1827, "\U0001f3cc\U0001f3fc\u200d\u2640\ufe0f", "woman golfing: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1824, nil},
	{1828, "\U0001f3cc\U0001f3fd\u200d\u2640\ufe0f", "woman golfing: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1824, nil},
	{1829, "\U0001f3cc\U0001f3fe\u200d\u2640\ufe0f", "woman golfing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1824, nil},
	{1830, "\U0001f3cc\U0001f3ff\u200d\u2640\ufe0f", "woman golfing: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1824, nil},
	{1831, "\U0001f3c4", "person surfing", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_surfing"}},
	{1832, "\U0001f3c4\U0001f3fb", "person surfing: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1830, nil},
	{1833, "\U0001f3c4\U0001f3fc", "person surfing: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1830, nil},
	{1834, "\U0001f3c4\U0001f3fd", "person surfing: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1830, nil},
	{1835, "\U0001f3c4\U0001f3fe", "person surfing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1830, nil},
	{1836, "\U0001f3c4\U0001f3ff", "person surfing: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1830, nil},
	{1837, "\U0001f3c4\u200d\u2642\ufe0f", "man surfing", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_surfing"}},
	{1838, "\U0001f3c4\U0001f3fb\u200d\u2642\ufe0f", "man surfing: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1836, nil},
	{1839, "\U0001f3c4\U0001f3fc\u200d\u2642\ufe0f", "man surfing: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1836, nil},
	{1840, "\U0001f3c4\U0001f3fd\u200d\u2642\ufe0f", "man surfing: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1836, nil},
	{1841, "\U0001f3c4\U0001f3fe\u200d\u2642\ufe0f", "man surfing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1836, nil},
	{1842, "\U0001f3c4\U0001f3ff\u200d\u2642\ufe0f", "man surfing: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1836, nil},
	{1843, "\U0001f3c4\u200d\u2640\ufe0f", "woman surfing", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_surfing"}},
	{1844, "\U0001f3c4\U0001f3fb\u200d\u2640\ufe0f", "woman surfing: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1842, nil},
	{1845, "\U0001f3c4\U0001f3fc\u200d\u2640\ufe0f", "woman surfing: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1842, nil},
	{1846, "\U0001f3c4\U0001f3fd\u200d\u2640\ufe0f", "woman surfing: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1842, nil},
	{1847, "\U0001f3c4\U0001f3fe\u200d\u2640\ufe0f", "woman surfing: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1842, nil},
	{1848, "\U0001f3c4\U0001f3ff\u200d\u2640\ufe0f", "woman surfing: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1842, nil},
	{1849, "\U0001f6a3", "person rowing boat", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"person_rowing_boat"}},
	{1850, "\U0001f6a3\U0001f3fb", "person rowing boat: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1848, nil},
	{1851, "\U0001f6a3\U0001f3fc", "person rowing boat: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1848, nil},
	{1852, "\U0001f6a3\U0001f3fd", "person rowing boat: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1848, nil},
	{1853, "\U0001f6a3\U0001f3fe", "person rowing boat: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1848, nil},
	{1854, "\U0001f6a3\U0001f3ff", "person rowing boat: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1848, nil},
	{1855, "\U0001f6a3\u200d\u2642\ufe0f", "man rowing boat", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_rowing_boat"}},
	{1856, "\U0001f6a3\U0001f3fb\u200d\u2642\ufe0f", "man rowing boat: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1854, nil},
	{1857, "\U0001f6a3\U0001f3fc\u200d\u2642\ufe0f", "man rowing boat: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1854, nil},
	{1858, "\U0001f6a3\U0001f3fd\u200d\u2642\ufe0f", "man rowing boat: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1854, nil},
	{1859, "\U0001f6a3\U0001f3fe\u200d\u2642\ufe0f", "man rowing boat: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1854, nil},
	{1860, "\U0001f6a3\U0001f3ff\u200d\u2642\ufe0f", "man rowing boat: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1854, nil},
	{1861, "\U0001f6a3\u200d\u2640\ufe0f", "woman rowing boat", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_rowing_boat"}},
	{1862, "\U0001f6a3\U0001f3fb\u200d\u2640\ufe0f", "woman rowing boat: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1860, nil},
	{1863, "\U0001f6a3\U0001f3fc\u200d\u2640\ufe0f", "woman rowing boat: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1860, nil},
	{1864, "\U0001f6a3\U0001f3fd\u200d\u2640\ufe0f", "woman rowing boat: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1860, nil},
	{1865, "\U0001f6a3\U0001f3fe\u200d\u2640\ufe0f", "woman rowing boat: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1860, nil},
	{1866, "\U0001f6a3\U0001f3ff\u200d\u2640\ufe0f", "woman rowing boat: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1860, nil},
	{1867, "\U0001f3ca", "person swimming", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_swimming"}},
	{1868, "\U0001f3ca\U0001f3fb", "person swimming: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1866, nil},
	{1869, "\U0001f3ca\U0001f3fc", "person swimming: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1866, nil},
	{1870, "\U0001f3ca\U0001f3fd", "person swimming: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1866, nil},
	{1871, "\U0001f3ca\U0001f3fe", "person swimming: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1866, nil},
	{1872, "\U0001f3ca\U0001f3ff", "person swimming: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1866, nil},
	{1873, "\U0001f3ca\u200d\u2642\ufe0f", "man swimming", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_swimming"}},
	{1874, "\U0001f3ca\U0001f3fb\u200d\u2642\ufe0f", "man swimming: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1872, nil},
	{1875, "\U0001f3ca\U0001f3fc\u200d\u2642\ufe0f", "man swimming: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1872, nil},
	{1876, "\U0001f3ca\U0001f3fd\u200d\u2642\ufe0f", "man swimming: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1872, nil},
	{1877, "\U0001f3ca\U0001f3fe\u200d\u2642\ufe0f", "man swimming: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1872, nil},
	{1878, "\U0001f3ca\U0001f3ff\u200d\u2642\ufe0f", "man swimming: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1872, nil},
	{1879, "\U0001f3ca\u200d\u2640\ufe0f", "woman swimming", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_swimming"}},
	{1880, "\U0001f3ca\U0001f3fb\u200d\u2640\ufe0f", "woman swimming: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1878, nil},
	{1881, "\U0001f3ca\U0001f3fc\u200d\u2640\ufe0f", "woman swimming: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1878, nil},
	{1882, "\U0001f3ca\U0001f3fd\u200d\u2640\ufe0f", "woman swimming: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1878, nil},
	{1883, "\U0001f3ca\U0001f3fe\u200d\u2640\ufe0f", "woman swimming: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1878, nil},
	{1884, "\U0001f3ca\U0001f3ff\u200d\u2640\ufe0f", "woman swimming: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1878, nil},
	{1885, "\u26f9\ufe0f", "person bouncing ball", PeopleAndBody, UnicodeVersion{0, 7}, ToneDefault, -1, []string{"person_bouncing_ball"}},
	{1886, "\u26f9\U0001f3fb", "person bouncing ball: light skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneLight, 1884, nil},
	{1887, "\u26f9\U0001f3fc", "person bouncing ball: medium-light skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMediumLight, 1884, nil},
	{1888, "\u26f9\U0001f3fd", "person bouncing ball: medium skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMedium, 1884, nil},
	{1889, "\u26f9\U0001f3fe", "person bouncing ball: medium-dark skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMediumDark, 1884, nil},
	{1890, "\u26f9\U0001f3ff", "person bouncing ball: dark skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneDark, 1884, nil},
	{1891, "\u26f9\ufe0f\u200d\u2642\ufe0f", "man bouncing ball", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_bouncing_ball"}},
	{1892, "\u26f9\U0001f3fb\u200d\u2642\ufe0f", "man bouncing ball: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1890, nil},
	{1893, "\u26f9\U0001f3fc\u200d\u2642\ufe0f", "man bouncing ball: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1890, nil},
	{1894, "\u26f9\U0001f3fd\u200d\u2642\ufe0f", "man bouncing ball: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1890, nil},
	{1895, "\u26f9\U0001f3fe\u200d\u2642\ufe0f", "man bouncing ball: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1890, nil},
	{1896, "\u26f9\U0001f3ff\u200d\u2642\ufe0f", "man bouncing ball: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1890, nil},
	{1897, "\u26f9\ufe0f\u200d\u2640\ufe0f", "woman bouncing ball", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_bouncing_ball"}},
	{1898, "\u26f9\U0001f3fb\u200d\u2640\ufe0f", "woman bouncing ball: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1896, nil},
	{1899, "\u26f9\U0001f3fc\u200d\u2640\ufe0f", "woman bouncing ball: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1896, nil},
	{1900, "\u26f9\U0001f3fd\u200d\u2640\ufe0f", "woman bouncing ball: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1896, nil},
	{1901, "\u26f9\U0001f3fe\u200d\u2640\ufe0f", "woman bouncing ball: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1896, nil},
	{1902, "\u26f9\U0001f3ff\u200d\u2640\ufe0f", "woman bouncing ball: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1896, nil},
	{1903, "\U0001f3cb\ufe0f", "person lifting weights", PeopleAndBody, UnicodeVersion{0, 7}, ToneDefault, -1, []string{"person_lifting_weights"}},
	{1904, "\U0001f3cb\U0001f3fb", "person lifting weights: light skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneLight, 1902, nil},
	{1905, "\U0001f3cb\U0001f3fc", "person lifting weights: medium-light skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMediumLight, 1902, nil},
	{1906, "\U0001f3cb\U0001f3fd", "person lifting weights: medium skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMedium, 1902, nil},
	{1907, "\U0001f3cb\U0001f3fe", "person lifting weights: medium-dark skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneMediumDark, 1902, nil},
	{1908, "\U0001f3cb\U0001f3ff", "person lifting weights: dark skin tone", PeopleAndBody, UnicodeVersion{2, 0}, ToneDark, 1902, nil},
	{1909, "\U0001f3cb\ufe0f\u200d\u2642\ufe0f", "man lifting weights", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_lifting_weights"}},
	{1910, "\U0001f3cb\U0001f3fb\u200d\u2642\ufe0f", "man lifting weights: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1908, nil},
	{1911, "\U0001f3cb\U0001f3fc\u200d\u2642\ufe0f", "man lifting weights: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1908, nil},
	{1912, "\U0001f3cb\U0001f3fd\u200d\u2642\ufe0f", "man lifting weights: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1908, nil},
	{1913, "\U0001f3cb\U0001f3fe\u200d\u2642\ufe0f", "man lifting weights: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1908, nil},
	{1914, "\U0001f3cb\U0001f3ff\u200d\u2642\ufe0f", "man lifting weights: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1908, nil},
	{1915, "\U0001f3cb\ufe0f\u200d\u2640\ufe0f", "woman lifting weights", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_lifting_weights"}},
	{1916, "\U0001f3cb\U0001f3fb\u200d\u2640\ufe0f", "woman lifting weights: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1914, nil},
	{1917, "\U0001f3cb\U0001f3fc\u200d\u2640\ufe0f", "woman lifting weights: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1914, nil},
	{1918, "\U0001f3cb\U0001f3fd\u200d\u2640\ufe0f", "woman lifting weights: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1914, nil},
	{1919, "\U0001f3cb\U0001f3fe\u200d\u2640\ufe0f", "woman lifting weights: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1914, nil},
	{1920, "\U0001f3cb\U0001f3ff\u200d\u2640\ufe0f", "woman lifting weights: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1914, nil},
	{1921, "\U0001f6b4", "person biking", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"person_biking"}},
	{1922, "\U0001f6b4\U0001f3fb", "person biking: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1920, nil},
	{1923, "\U0001f6b4\U0001f3fc", "person biking: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1920, nil},
	{1924, "\U0001f6b4\U0001f3fd", "person biking: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1920, nil},
	{1925, "\U0001f6b4\U0001f3fe", "person biking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1920, nil},
	{1926, "\U0001f6b4\U0001f3ff", "person biking: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1920, nil},
	{1927, "\U0001f6b4\u200d\u2642\ufe0f", "man biking", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_biking"}},
	{1928, "\U0001f6b4\U0001f3fb\u200d\u2642\ufe0f", "man biking: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1926, nil},
	{1929, "\U0001f6b4\U0001f3fc\u200d\u2642\ufe0f", "man biking: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1926, nil},
	{1930, "\U0001f6b4\U0001f3fd\u200d\u2642\ufe0f", "man biking: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1926, nil},
	{1931, "\U0001f6b4\U0001f3fe\u200d\u2642\ufe0f", "man biking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1926, nil},
	{1932, "\U0001f6b4\U0001f3ff\u200d\u2642\ufe0f", "man biking: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1926, nil},
	{1933, "\U0001f6b4\u200d\u2640\ufe0f", "woman biking", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_biking"}},
	{1934, "\U0001f6b4\U0001f3fb\u200d\u2640\ufe0f", "woman biking: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1932, nil},
	{1935, "\U0001f6b4\U0001f3fc\u200d\u2640\ufe0f", "woman biking: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1932, nil},
	{1936, "\U0001f6b4\U0001f3fd\u200d\u2640\ufe0f", "woman biking: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1932, nil},
	{1937, "\U0001f6b4\U0001f3fe\u200d\u2640\ufe0f", "woman biking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1932, nil},
	{1938, "\U0001f6b4\U0001f3ff\u200d\u2640\ufe0f", "woman biking: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1932, nil},
	{1939, "\U0001f6b5", "person mountain biking", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"person_mountain_biking"}},
	{1940, "\U0001f6b5\U0001f3fb", "person mountain biking: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 1938, nil},
	{1941, "\U0001f6b5\U0001f3fc", "person mountain biking: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 1938, nil},
	{1942, "\U0001f6b5\U0001f3fd", "person mountain biking: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 1938, nil},
	{1943, "\U0001f6b5\U0001f3fe", "person mountain biking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 1938, nil},
	{1944, "\U0001f6b5\U0001f3ff", "person mountain biking: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 1938, nil},
	{1945, "\U0001f6b5\u200d\u2642\ufe0f", "man mountain biking", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_mountain_biking"}},
	{1946, "\U0001f6b5\U0001f3fb\u200d\u2642\ufe0f", "man mountain biking: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1944, nil},
	{1947, "\U0001f6b5\U0001f3fc\u200d\u2642\ufe0f", "man mountain biking: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1944, nil},
	{1948, "\U0001f6b5\U0001f3fd\u200d\u2642\ufe0f", "man mountain biking: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1944, nil},
	{1949, "\U0001f6b5\U0001f3fe\u200d\u2642\ufe0f", "man mountain biking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1944, nil},
	{1950, "\U0001f6b5\U0001f3ff\u200d\u2642\ufe0f", "man mountain biking: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1944, nil},
	{1951, "\U0001f6b5\u200d\u2640\ufe0f", "woman mountain biking", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_mountain_biking"}},
	{1952, "\U0001f6b5\U0001f3fb\u200d\u2640\ufe0f", "woman mountain biking: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1950, nil},
	{1953, "\U0001f6b5\U0001f3fc\u200d\u2640\ufe0f", "woman mountain biking: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1950, nil},
	{1954, "\U0001f6b5\U0001f3fd\u200d\u2640\ufe0f", "woman mountain biking: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1950, nil},
	{1955, "\U0001f6b5\U0001f3fe\u200d\u2640\ufe0f", "woman mountain biking: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1950, nil},
	{1956, "\U0001f6b5\U0001f3ff\u200d\u2640\ufe0f", "woman mountain biking: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1950, nil},
	{1957, "\U0001f938", "person cartwheeling", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"person_cartwheeling"}},
	{1958, "\U0001f938\U0001f3fb", "person cartwheeling: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 1956, nil},
	{1959, "\U0001f938\U0001f3fc", "person cartwheeling: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 1956, nil},
	{1960, "\U0001f938\U0001f3fd", "person cartwheeling: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 1956, nil},
	{1961, "\U0001f938\U0001f3fe", "person cartwheeling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 1956, nil},
	{1962, "\U0001f938\U0001f3ff", "person cartwheeling: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 1956, nil},
	{1963, "\U0001f938\u200d\u2642\ufe0f", "man cartwheeling", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_cartwheeling"}},
	{1964, "\U0001f938\U0001f3fb\u200d\u2642\ufe0f", "man cartwheeling: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1962, nil},
	{1965, "\U0001f938\U0001f3fc\u200d\u2642\ufe0f", "man cartwheeling: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1962, nil},
	{1966, "\U0001f938\U0001f3fd\u200d\u2642\ufe0f", "man cartwheeling: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1962, nil},
	{1967, "\U0001f938\U0001f3fe\u200d\u2642\ufe0f", "man cartwheeling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1962, nil},
	{1968, "\U0001f938\U0001f3ff\u200d\u2642\ufe0f", "man cartwheeling: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1962, nil},
	{1969, "\U0001f938\u200d\u2640\ufe0f", "woman cartwheeling", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_cartwheeling"}},
	{1970, "\U0001f938\U0001f3fb\u200d\u2640\ufe0f", "woman cartwheeling: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1968, nil},
	{1971, "\U0001f938\U0001f3fc\u200d\u2640\ufe0f", "woman cartwheeling: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1968, nil},
	{1972, "\U0001f938\U0001f3fd\u200d\u2640\ufe0f", "woman cartwheeling: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1968, nil},
	{1973, "\U0001f938\U0001f3fe\u200d\u2640\ufe0f", "woman cartwheeling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1968, nil},
	{1974, "\U0001f938\U0001f3ff\u200d\u2640\ufe0f", "woman cartwheeling: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1968, nil},
	{1975, "\U0001f93c", "people wrestling", PeopleAndBody, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"people_wrestling"}},
	{1976, "\U0001f93c\u200d\u2642\ufe0f", "men wrestling", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"men_wrestling"}},
	{1977, "\U0001f93c\u200d\u2640\ufe0f", "women wrestling", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"women_wrestling"}},
	{1978, "\U0001f93d", "person playing water polo", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"person_playing_water_polo"}},
	{1979, "\U0001f93d\U0001f3fb", "person playing water polo: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 1977, nil},
	{1980, "\U0001f93d\U0001f3fc", "person playing water polo: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 1977, nil},
	{1981, "\U0001f93d\U0001f3fd", "person playing water polo: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 1977, nil},
	{1982, "\U0001f93d\U0001f3fe", "person playing water polo: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 1977, nil},
	{1983, "\U0001f93d\U0001f3ff", "person playing water polo: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 1977, nil},
	{1984, "\U0001f93d\u200d\u2642\ufe0f", "man playing water polo", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_playing_water_polo"}},
	{1985, "\U0001f93d\U0001f3fb\u200d\u2642\ufe0f", "man playing water polo: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1983, nil},
	{1986, "\U0001f93d\U0001f3fc\u200d\u2642\ufe0f", "man playing water polo: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1983, nil},
	{1987, "\U0001f93d\U0001f3fd\u200d\u2642\ufe0f", "man playing water polo: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1983, nil},
	{1988, "\U0001f93d\U0001f3fe\u200d\u2642\ufe0f", "man playing water polo: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1983, nil},
	{1989, "\U0001f93d\U0001f3ff\u200d\u2642\ufe0f", "man playing water polo: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1983, nil},
	{1990, "\U0001f93d\u200d\u2640\ufe0f", "woman playing water polo", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_playing_water_polo"}},
	{1991, "\U0001f93d\U0001f3fb\u200d\u2640\ufe0f", "woman playing water polo: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 1989, nil},
	{1992, "\U0001f93d\U0001f3fc\u200d\u2640\ufe0f", "woman playing water polo: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 1989, nil},
	{1993, "\U0001f93d\U0001f3fd\u200d\u2640\ufe0f", "woman playing water polo: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 1989, nil},
	{1994, "\U0001f93d\U0001f3fe\u200d\u2640\ufe0f", "woman playing water polo: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 1989, nil},
	{1995, "\U0001f93d\U0001f3ff\u200d\u2640\ufe0f", "woman playing water polo: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 1989, nil},
	{1996, "\U0001f93e", "person playing handball", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"person_playing_handball"}},
	{1997, "\U0001f93e\U0001f3fb", "person playing handball: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 1995, nil},
	{1998, "\U0001f93e\U0001f3fc", "person playing handball: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 1995, nil},
	{1999, "\U0001f93e\U0001f3fd", "person playing handball: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 1995, nil},
	{2000, "\U0001f93e\U0001f3fe", "person playing handball: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 1995, nil},
	{2001, "\U0001f93e\U0001f3ff", "person playing handball: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 1995, nil},
	{2002, "\U0001f93e\u200d\u2642\ufe0f", "man playing handball", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_playing_handball"}},
	{2003, "\U0001f93e\U0001f3fb\u200d\u2642\ufe0f", "man playing handball: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 2001, nil},
	{2004, "\U0001f93e\U0001f3fc\u200d\u2642\ufe0f", "man playing handball: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 2001, nil},
	{2005, "\U0001f93e\U0001f3fd\u200d\u2642\ufe0f", "man playing handball: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 2001, nil},
	{2006, "\U0001f93e\U0001f3fe\u200d\u2642\ufe0f", "man playing handball: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 2001, nil},
	{2007, "\U0001f93e\U0001f3ff\u200d\u2642\ufe0f", "man playing handball: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 2001, nil},
	{2008, "\U0001f93e\u200d\u2640\ufe0f", "woman playing handball", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_playing_handball"}},
	{2009, "\U0001f93e\U0001f3fb\u200d\u2640\ufe0f", "woman playing handball: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 2007, nil},
	{2010, "\U0001f93e\U0001f3fc\u200d\u2640\ufe0f", "woman playing handball: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 2007, nil},
	{2011, "\U0001f93e\U0001f3fd\u200d\u2640\ufe0f", "woman playing handball: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 2007, nil},
	{2012, "\U0001f93e\U0001f3fe\u200d\u2640\ufe0f", "woman playing handball: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 2007, nil},
	{2013, "\U0001f93e\U0001f3ff\u200d\u2640\ufe0f", "woman playing handball: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 2007, nil},
	{2014, "\U0001f939", "person juggling", PeopleAndBody, UnicodeVersion{3, 0}, ToneDefault, -1, []string{"person_juggling"}},
	{2015, "\U0001f939\U0001f3fb", "person juggling: light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneLight, 2013, nil},
	{2016, "\U0001f939\U0001f3fc", "person juggling: medium-light skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumLight, 2013, nil},
	{2017, "\U0001f939\U0001f3fd", "person juggling: medium skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMedium, 2013, nil},
	{2018, "\U0001f939\U0001f3fe", "person juggling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneMediumDark, 2013, nil},
	{2019, "\U0001f939\U0001f3ff", "person juggling: dark skin tone", PeopleAndBody, UnicodeVersion{3, 0}, ToneDark, 2013, nil},
	{2020, "\U0001f939\u200d\u2642\ufe0f", "man juggling", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"man_juggling"}},
	{2021, "\U0001f939\U0001f3fb\u200d\u2642\ufe0f", "man juggling: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 2019, nil},
	{2022, "\U0001f939\U0001f3fc\u200d\u2642\ufe0f", "man juggling: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 2019, nil},
	{2023, "\U0001f939\U0001f3fd\u200d\u2642\ufe0f", "man juggling: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 2019, nil},
	{2024, "\U0001f939\U0001f3fe\u200d\u2642\ufe0f", "man juggling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 2019, nil},
	{2025, "\U0001f939\U0001f3ff\u200d\u2642\ufe0f", "man juggling: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 2019, nil},
	{2026, "\U0001f939\u200d\u2640\ufe0f", "woman juggling", PeopleAndBody, UnicodeVersion{4, 0}, ToneDefault, -1, []string{"woman_juggling"}},
	{2027, "\U0001f939\U0001f3fb\u200d\u2640\ufe0f", "woman juggling: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 2025, nil},
	{2028, "\U0001f939\U0001f3fc\u200d\u2640\ufe0f", "woman juggling: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 2025, nil},
	{2029, "\U0001f939\U0001f3fd\u200d\u2640\ufe0f", "woman juggling: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 2025, nil},
	{2030, "\U0001f939\U0001f3fe\u200d\u2640\ufe0f", "woman juggling: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 2025, nil},
	{2031, "\U0001f939\U0001f3ff\u200d\u2640\ufe0f", "woman juggling: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 2025, nil},
	{2032, "\U0001f9d8", "person in lotus position", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"person_in_lotus_position"}},
	{2033, "\U0001f9d8\U0001f3fb", "person in lotus position: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 2031, nil},
	{2034, "\U0001f9d8\U0001f3fc", "person in lotus position: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 2031, nil},
	{2035, "\U0001f9d8\U0001f3fd", "person in lotus position: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 2031, nil},
	{2036, "\U0001f9d8\U0001f3fe", "person in lotus position: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 2031, nil},
	{2037, "\U0001f9d8\U0001f3ff", "person in lotus position: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 2031, nil},
	{2038, "\U0001f9d8\u200d\u2642\ufe0f", "man in lotus position", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"man_in_lotus_position"}},
	{2039, "\U0001f9d8\U0001f3fb\u200d\u2642\ufe0f", "man in lotus position: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 2037, nil},
	{2040, "\U0001f9d8\U0001f3fc\u200d\u2642\ufe0f", "man in lotus position: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 2037, nil},
	{2041, "\U0001f9d8\U0001f3fd\u200d\u2642\ufe0f", "man in lotus position: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 2037, nil},
	{2042, "\U0001f9d8\U0001f3fe\u200d\u2642\ufe0f", "man in lotus position: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 2037, nil},
	{2043, "\U0001f9d8\U0001f3ff\u200d\u2642\ufe0f", "man in lotus position: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 2037, nil},
	{2044, "\U0001f9d8\u200d\u2640\ufe0f", "woman in lotus position", PeopleAndBody, UnicodeVersion{5, 0}, ToneDefault, -1, []string{"woman_in_lotus_position"}},
	{2045, "\U0001f9d8\U0001f3fb\u200d\u2640\ufe0f", "woman in lotus position: light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneLight, 2043, nil},
	{2046, "\U0001f9d8\U0001f3fc\u200d\u2640\ufe0f", "woman in lotus position: medium-light skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumLight, 2043, nil},
	{2047, "\U0001f9d8\U0001f3fd\u200d\u2640\ufe0f", "woman in lotus position: medium skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMedium, 2043, nil},
	{2048, "\U0001f9d8\U0001f3fe\u200d\u2640\ufe0f", "woman in lotus position: medium-dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneMediumDark, 2043, nil},
	{2049, "\U0001f9d8\U0001f3ff\u200d\u2640\ufe0f", "woman in lotus position: dark skin tone", PeopleAndBody, UnicodeVersion{5, 0}, ToneDark, 2043, nil},
	{2050, "\U0001f6c0", "person taking bath", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"person_taking_bath"}},
	{2051, "\U0001f6c0\U0001f3fb", "person taking bath: light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneLight, 2049, nil},
	{2052, "\U0001f6c0\U0001f3fc", "person taking bath: medium-light skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumLight, 2049, nil},
	{2053, "\U0001f6c0\U0001f3fd", "person taking bath: medium skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMedium, 2049, nil},
	{2054, "\U0001f6c0\U0001f3fe", "person taking bath: medium-dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneMediumDark, 2049, nil},
	{2055, "\U0001f6c0\U0001f3ff", "person taking bath: dark skin tone", PeopleAndBody, UnicodeVersion{1, 0}, ToneDark, 2049, nil},
	{2056, "\U0001f6cc", "person in bed", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"person_in_bed"}},
	{2057, "\U0001f6cc\U0001f3fb", "person in bed: light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneLight, 2055, nil},
	{2058, "\U0001f6cc\U0001f3fc", "person in bed: medium-light skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumLight, 2055, nil},
	{2059, "\U0001f6cc\U0001f3fd", "person in bed: medium skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMedium, 2055, nil},
	{2060, "\U0001f6cc\U0001f3fe", "person in bed: medium-dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneMediumDark, 2055, nil},
	{2061, "\U0001f6cc\U0001f3ff", "person in bed: dark skin tone", PeopleAndBody, UnicodeVersion{4, 0}, ToneDark, 2055, nil},
	{2062, "\U0001f9d1\u200d\U0001f91d\u200d\U0001f9d1", "people holding hands", PeopleAndBody, UnicodeVersion{12, 0}, ToneDefault, -1, []string{"people_holding_hands"}},
	{2063, "\U0001f9d1\U0001f3fb\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fb", "people holding hands: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 2061, nil},
	{2064, "\U0001f9d1\U0001f3fc\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fc", "people holding hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 2061, nil},
	{2065, "\U0001f9d1\U0001f3fd\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fd", "people holding hands: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 2061, nil},
	{2066, "\U0001f9d1\U0001f3fe\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fe", "people holding hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 2061, nil},
	{2067, "\U0001f9d1\U0001f3ff\u200d\U0001f91d\u200d\U0001f9d1\U0001f3ff", "people holding hands: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 2061, nil},
	{2068, "\U0001f46d", "women holding hands", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"women_holding_hands"}},
	{2069, "\U0001f46d\U0001f3fb", "women holding hands: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 2067, nil},
	{2070, "\U0001f46d\U0001f3fc", "women holding hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 2067, nil},
	{2071, "\U0001f46d\U0001f3fd", "women holding hands: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 2067, nil},
	{2072, "\U0001f46d\U0001f3fe", "women holding hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 2067, nil},
	{2073, "\U0001f46d\U0001f3ff", "women holding hands: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 2067, nil},
	{2074, "\U0001f46b", "woman and man holding hands", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"woman_and_man_holding_hands"}},
	{2075, "\U0001f46b\U0001f3fb", "woman and man holding hands: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 2073, nil},
	{2076, "\U0001f46b\U0001f3fc", "woman and man holding hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 2073, nil},
	{2077, "\U0001f46b\U0001f3fd", "woman and man holding hands: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 2073, nil},
	{2078, "\U0001f46b\U0001f3fe", "woman and man holding hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 2073, nil},
	{2079, "\U0001f46b\U0001f3ff", "woman and man holding hands: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 2073, nil},
	{2080, "\U0001f46c", "men holding hands", PeopleAndBody, UnicodeVersion{1, 0}, ToneDefault, -1, []string{"men_holding_hands"}},
	{2081, "\U0001f46c\U0001f3fb", "men holding hands: light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneLight, 2079, nil},
	{2082, "\U0001f46c\U0001f3fc", "men holding hands: medium-light skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumLight, 2079, nil},
	{2083, "\U0001f46c\U0001f3fd", "men holding hands: medium skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMedium, 2079, nil},
	{2084, "\U0001f46c\U0001f3fe", "men holding hands: medium-dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneMediumDark, 2079, nil},
	{2085, "\U0001f46c\U0001f3ff", "men holding hands: dark skin tone", PeopleAndBody, UnicodeVersion{12, 0}, ToneDark, 2079, nil},
	{2086, "\U0001f48f", "kiss", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"kiss"}},
	{2087, "\U0001f48f\U0001f3fb", "kiss: light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 2085, nil},
	{2088, "\U0001f48f\U0001f3fc", "kiss: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 2085, nil},
	{2089, "\U0001f48f\U0001f3fd", "kiss: medium skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 2085, nil},
	{2090, "\U0001f48f\U0001f3fe", "kiss: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 2085, nil},
	{2091, "\U0001f48f\U0001f3ff", "kiss: dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 2085, nil},
	{2092, "\U0001f469\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468", "kiss: woman, man", PeopleAndBody, UnicodeVersion{2, 0}, ToneDefault, -1, []string{"kiss_woman_man"}},
	{2093, "\U0001f469\U0001f3fb\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3fb", "kiss: woman, man, light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 2091, nil},
	{2094, "\U0001f469\U0001f3fc\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3fc", "kiss: woman, man, medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 2091, nil},
	{2095, "\U0001f469\U0001f3fd\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3fd", "kiss: woman, man, medium skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 2091, nil},
	{2096, "\U0001f469\U0001f3fe\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3fe", "kiss: woman, man, medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 2091, nil},
	{2097, "\U0001f469\U0001f3ff\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3ff", "kiss: woman, man, dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 2091, nil},
	{2098, "\U0001f468\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468", "kiss: man, man", PeopleAndBody, UnicodeVersion{2, 0}, ToneDefault, -1, []string{"kiss_man_man"}},
	{2099, "\U0001f468\U0001f3fb\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3fb", "kiss: man, man, light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 2097, nil},
	{2100, "\U0001f468\U0001f3fc\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3fc", "kiss: man, man, medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 2097, nil},
	{2101, "\U0001f468\U0001f3fd\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3fd", "kiss: man, man, medium skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 2097, nil},
	{2102, "\U0001f468\U0001f3fe\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3fe", "kiss: man, man, medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 2097, nil},
	{2103, "\U0001f468\U0001f3ff\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f468\U0001f3ff", "kiss: man, man, dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 2097, nil},
	{2104, "\U0001f469\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f469", "kiss: woman, woman", PeopleAndBody, UnicodeVersion{2, 0}, ToneDefault, -1, []string{"kiss_woman_woman"}},
	{2105, "\U0001f469\U0001f3fb\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f469\U0001f3fb", "kiss: woman, woman, light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 2103, nil},
	{2106, "\U0001f469\U0001f3fc\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f469\U0001f3fc", "kiss: woman, woman, medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 2103, nil},
	{2107, "\U0001f469\U0001f3fd\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f469\U0001f3fd", "kiss: woman, woman, medium skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 2103, nil},
	{2108, "\U0001f469\U0001f3fe\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f469\U0001f3fe", "kiss: woman, woman, medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 2103, nil},
	{2109, "\U0001f469\U0001f3ff\u200d\u2764\ufe0f\u200d\U0001f48b\u200d\U0001f469\U0001f3ff", "kiss: woman, woman, dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 2103, nil},
	{2110, "\U0001f491", "couple with heart", PeopleAndBody, UnicodeVersion{0, 6}, ToneDefault, -1, []string{"couple_with_heart"}},
	{2111, "\U0001f491\U0001f3fb", "couple with heart: light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 2109, nil},
	{2112, "\U0001f491\U0001f3fc", "couple with heart: medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 2109, nil},
	{2113, "\U0001f491\U0001f3fd", "couple with heart: medium skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 2109, nil},
	{2114, "\U0001f491\U0001f3fe", "couple with heart: medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 2109, nil},
	{2115, "\U0001f491\U0001f3ff", "couple with heart: dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 2109, nil},
	{2116, "\U0001f469\u200d\u2764\ufe0f\u200d\U0001f468", "couple with heart: woman, man", PeopleAndBody, UnicodeVersion{2, 0}, ToneDefault, -1, []string{"couple_with_heart_woman_man"}},
	{2117, "\U0001f469\U0001f3fb\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3fb", "couple with heart: woman, man, light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 2115, nil},
	{2118, "\U0001f469\U0001f3fc\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3fc", "couple with heart: woman, man, medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 2115, nil},
	{2119, "\U0001f469\U0001f3fd\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3fd", "couple with heart: woman, man, medium skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 2115, nil},
	{2120, "\U0001f469\U0001f3fe\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3fe", "couple with heart: woman, man, medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 2115, nil},
	{2121, "\U0001f469\U0001f3ff\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3ff", "couple with heart: woman, man, dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 2115, nil},
	{2122, "\U0001f468\u200d\u2764\ufe0f\u200d\U0001f468", "couple with heart: man, man", PeopleAndBody, UnicodeVersion{2, 0}, ToneDefault, -1, []string{"couple_with_heart_man_man"}},
	{2123, "\U0001f468\U0001f3fb\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3fb", "couple with heart: man, man, light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 2121, nil},
	{2124, "\U0001f468\U0001f3fc\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3fc", "couple with heart: man, man, medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 2121, nil},
	{2125, "\U0001f468\U0001f3fd\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3fd", "couple with heart: man, man, medium skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 2121, nil},
	{2126, "\U0001f468\U0001f3fe\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3fe", "couple with heart: man, man, medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 2121, nil},
	{2127, "\U0001f468\U0001f3ff\u200d\u2764\ufe0f\u200d\U0001f468\U0001f3ff", "couple with heart: man, man, dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 2121, nil},
	{2128, "\U0001f469\u200d\u2764\ufe0f\u200d\U0001f469", "couple with heart: woman, woman", PeopleAndBody, UnicodeVersion{2, 0}, ToneDefault, -1, []string{"couple_with_heart_woman_woman"}},
	{2129, "\U0001f469\U0001f3fb\u200d\u2764\ufe0f\u200d\U0001f469\U0001f3fb", "couple with heart: woman, woman, light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneLight, 2127, nil},
	{2130, "\U0001f469\U0001f3fc\u200d\u2764\ufe0f\u200d\U0001f469\U0001f3fc", "couple with heart: woman, woman, medium-light skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumLight, 2127, nil},
	{2131, "\U0001f469\U0001f3fd\u200d\u2764\ufe0f\u200d\U0001f469\U0001f3fd", "couple with heart: woman, woman, medium skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMedium, 2127, nil},
	{2132, "\U0001f469\U0001f3fe\u200d\u2764\ufe0f\u200d\U0001f469\U0001f3fe", "couple with heart: woman, woman, medium-dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneMediumDark, 2127, nil},
	{2133, "\U0001f469\U0001f3ff\u200d\u2764\ufe0f\u200d\U0001f469\U0001f3ff", "couple with heart: woman, woman, dark skin tone", PeopleAndBody, UnicodeVersion{13, 1}, ToneDark, 2127, nil},
	{2134, "\U0001f468\u200d\U0001f469\u200d\U0001f466", "family: man, woman, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_woman_boy"}},
	{2135, "\U0001f468\u200d\U0001f469\u200d\U0001f467", "family: man, woman, girl", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_woman_girl"}},
	{2136, "\U0001f468\u200d\U0001f469\u200d\U0001f467\u200d\U0001f466", "family: man, woman, girl, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_woman_girl_boy"}},
	{2137, "\U0001f468\u200d\U0001f469\u200d\U0001f466\u200d\U0001f466", "family: man, woman, boy, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_woman_boy_boy"}},
	{2138, "\U0001f468\u200d\U0001f469\u200d\U0001f467\u200d\U0001f467", "family: man, woman, girl, girl", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_woman_girl_girl"}},
	{2139, "\U0001f468\u200d\U0001f468\u200d\U0001f466", "family: man, man, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_man_boy"}},
	{2140, "\U0001f468\u200d\U0001f468\u200d\U0001f467", "family: man, man, girl", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_man_girl"}},
	{2141, "\U0001f468\u200d\U0001f468\u200d\U0001f467\u200d\U0001f466", "family: man, man, girl, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_man_girl_boy"}},
	{2142, "\U0001f468\u200d\U0001f468\u200d\U0001f466\u200d\U0001f466", "family: man, man, boy, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_man_boy_boy"}},
	{2143, "\U0001f468\u200d\U0001f468\u200d\U0001f467\u200d\U0001f467", "family: man, man, girl, girl", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_man_man_girl_girl"}},
	{2144, "\U0001f469\u200d\U0001f469\u200d\U0001f466", "family: woman, woman, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_woman_woman_boy"}},
	{2145, "\U0001f469\u200d\U0001f469\u200d\U0001f467", "family: woman, woman, girl", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_woman_woman_girl"}},
	{2146, "\U0001f469\u200d\U0001f469\u200d\U0001f467\u200d\U0001f466", "family: woman, woman, girl, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_woman_woman_girl_boy"}},
	{2147, "\U0001f469\u200d\U0001f469\u200d\U0001f466\u200d\U0001f466", "family: woman, woman, boy, boy", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_woman_woman_boy_boy"}},
	{2148, "\U0001f469\u200d\U0001f469\u200d\U0001f467\u200d\U0001f467", "family: woman, woman, girl, girl", PeopleAndBody, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"family_woman_woman_girl_girl"}},
	{2149, "\U0001f468\u200d\U0001f466", "family: man, boy", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_man_boy"}},
	{2150, "\U0001f468\u200d\U0001f466\u200d\U0001f466", "family: man, boy, boy", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_man_boy_boy"}},
	{2151, "\U0001f468\u200d\U0001f467", "family: man, girl", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_man_girl"}},
	{2152, "\U0001f468\u200d\U0001f467\u200d\U0001f466", "family: man, girl, boy", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_man_girl_boy"}},
	{2153, "\U0001f468\u200d\U0001f467\u200d\U0001f467", "family: man, girl, girl", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_man_girl_girl"}},
	{2154, "\U0001f469\u200d\U0001f466", "family: woman, boy", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_woman_boy"}},
	{2155, "\U0001f469\u200d\U0001f466\u200d\U0001f466", "family: woman, boy, boy", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_woman_boy_boy"}},
	{2156, "\U0001f469\u200d\U0001f467", "family: woman, girl", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_woman_girl"}},
	{2157, "\U0001f469\u200d\U0001f467\u200d\U0001f466", "family: woman, girl, boy", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_woman_girl_boy"}},
	{2158, "\U0001f469\u200d\U0001f467\u200d\U0001f467", "family: woman, girl, girl", PeopleAndBody, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"family_woman_girl_girl"}},
	{2159, "\U0001f5e3\ufe0f", "speaking head", PeopleAndBody, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"speaking_head"}},
	{2160, "\U0001f464", "bust in silhouette", PeopleAndBody, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bust_in_silhouette"}},
	{2161, "\U0001f465", "busts in silhouette", PeopleAndBody, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"busts_in_silhouette"}},
	{2162, "\U0001fac2", "people hugging", PeopleAndBody, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"people_hugging"}},
	{2163, "\U0001f46a", "family", PeopleAndBody, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"family"}},
	{2164, "\U0001f9d1\u200d\U0001f9d1\u200d\U0001f9d2", "family: adult, adult, child", PeopleAndBody, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"family_adult_adult_child"}},
	{2165, "\U0001f9d1\u200d\U0001f9d1\u200d\U0001f9d2\u200d\U0001f9d2", "family: adult, adult, child, child", PeopleAndBody, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"family_adult_adult_child_child"}},
	{2166, "\U0001f9d1\u200d\U0001f9d2", "family: adult, child", PeopleAndBody, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"family_adult_child"}},
	{2167, "\U0001f9d1\u200d\U0001f9d2\u200d\U0001f9d2", "family: adult, child, child", PeopleAndBody, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"family_adult_child_child"}},
	{2168, "\U0001f463", "footprints", PeopleAndBody, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"footprints"}},
	{2169, "\U0001f3fb", "light skin tone", Component, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"light_skin_tone"}},
	{2170, "\U0001f3fc", "medium-light skin tone", Component, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"medium_light_skin_tone"}},
	{2171, "\U0001f3fd", "medium skin tone", Component, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"medium_skin_tone"}},
	{2172, "\U0001f3fe", "medium-dark skin tone", Component, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"medium_dark_skin_tone"}},
	{2173, "\U0001f3ff", "dark skin tone", Component, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"dark_skin_tone"}},
	{2174, "\U0001f9b0", "red hair", Component, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"red_hair"}},
	{2175, "\U0001f9b1", "curly hair", Component, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"curly_hair"}},
	{2176, "\U0001f9b3", "white hair", Component, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"white_hair"}},
	{2177, "\U0001f9b2", "bald", Component, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"bald"}},
	{2178, "\U0001f435", "monkey face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"monkey_face"}},
	{2179, "\U0001f412", "monkey", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"monkey"}},
	{2180, "\U0001f98d", "gorilla", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"gorilla"}},
	{2181, "\U0001f9a7", "orangutan", AnimalsAndNature, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"orangutan"}},
	{2182, "\U0001f436", "dog face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dog"}},
	{2183, "\U0001f415", "dog", AnimalsAndNature, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"dog2"}},
	{2184, "\U0001f9ae", "guide dog", AnimalsAndNature, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"guide_dog"}},
	{2185, "\U0001f415\u200d\U0001f9ba", "service dog", AnimalsAndNature, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"service_dog"}},
	{2186, "\U0001f429", "poodle", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"poodle"}},
	{2187, "\U0001f43a", "wolf", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"wolf"}},
	{2188, "\U0001f98a", "fox", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"fox"}},
	{2189, "\U0001f99d", "raccoon", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"raccoon"}},
	{2190, "\U0001f431", "cat face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cat"}},
	{2191, "\U0001f408", "cat", AnimalsAndNature, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"cat2"}},
	{2192, "\U0001f408\u200d\u2b1b", "black cat", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"black_cat"}},
	{2193, "\U0001f981", "lion", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"lion"}},
	{2194, "\U0001f42f", "tiger face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tiger"}},
	{2195, "\U0001f405", "tiger", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"tiger2"}},
	{2196, "\U0001f406", "leopard", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"leopard"}},
	{2197, "\U0001f434", "horse face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"horse"}},
	{2198, "\U0001face", "moose", AnimalsAndNature, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"moose"}},
	{2199, "\U0001facf", "donkey", AnimalsAndNature, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"donkey"}},
	{2200, "\U0001f40e", "horse", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"racehorse"}},
	{2201, "\U0001f984", "unicorn", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"unicorn"}},
	{2202, "\U0001f993", "zebra", AnimalsAndNature, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"zebra"}},
	{2203, "\U0001f98c", "deer", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"deer"}},
	{2204, "\U0001f9ac", "bison", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"bison"}},
	{2205, "\U0001f42e", "cow face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cow"}},
	{2206, "\U0001f402", "ox", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"ox"}},
	{2207, "\U0001f403", "water buffalo", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"water_buffalo"}},
	{2208, "\U0001f404", "cow", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"cow2"}},
	{2209, "\U0001f437", "pig face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pig"}},
	{2210, "\U0001f416", "pig", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"pig2"}},
	{2211, "\U0001f417", "boar", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"boar"}},
	{2212, "\U0001f43d", "pig nose", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pig_nose"}},
	{2213, "\U0001f40f", "ram", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"ram"}},
	{2214, "\U0001f411", "ewe", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ewe"}},
	{2215, "\U0001f410", "goat", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"goat"}},
	{2216, "\U0001f42a", "camel", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"camel"}},
	{2217, "\U0001f42b", "two-hump camel", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"two_hump_camel"}},
	{2218, "\U0001f999", "llama", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"llama"}},
	{2219, "\U0001f992", "giraffe", AnimalsAndNature, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"giraffe"}},
	{2220, "\U0001f418", "elephant", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"elephant"}},
	{2221, "\U0001f9a3", "mammoth", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"mammoth"}},
	{2222, "\U0001f98f", "rhinoceros", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"rhinoceros"}},
	{2223, "\U0001f99b", "hippopotamus", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"hippopotamus"}},
	{2224, "\U0001f42d", "mouse face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"mouse"}},
	{2225, "\U0001f401", "mouse", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"mouse2"}},
	{2226, "\U0001f400", "rat", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"rat"}},
	{2227, "\U0001f439", "hamster", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hamster"}},
	{2228, "\U0001f430", "rabbit face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"rabbit"}},
	{2229, "\U0001f407", "rabbit", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"rabbit2"}},
	{2230, "\U0001f43f\ufe0f", "chipmunk", AnimalsAndNature, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"chipmunk"}},
	{2231, "\U0001f9ab", "beaver", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"beaver"}},
	{2232, "\U0001f994", "hedgehog", AnimalsAndNature, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"hedgehog"}},
	{2233, "\U0001f987", "bat", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"bat"}},
	{2234, "\U0001f43b", "bear", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bear"}},
	{2235, "\U0001f43b\u200d\u2744\ufe0f", "polar bear", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"polar_bear"}},
	{2236, "\U0001f428", "koala", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"koala"}},
	{2237, "\U0001f43c", "panda", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"panda_face"}},
	{2238, "\U0001f9a5", "sloth", AnimalsAndNature, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"sloth"}},
	{2239, "\U0001f9a6", "otter", AnimalsAndNature, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"otter"}},
	{2240, "\U0001f9a8", "skunk", AnimalsAndNature, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"skunk"}},
	{2241, "\U0001f998", "kangaroo", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"kangaroo"}},
	{2242, "\U0001f9a1", "badger", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"badger"}},
	{2243, "\U0001f43e", "paw prints", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"paw_prints"}},
	{2244, "\U0001f983", "turkey", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"turkey"}},
	{2245, "\U0001f414", "chicken", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"chicken"}},
	{2246, "\U0001f413", "rooster", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"rooster"}},
	{2247, "\U0001f423", "hatching chick", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hatching_chick"}},
	{2248, "\U0001f424", "baby chick", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"baby_chick"}},
	{2249, "\U0001f425", "front-facing baby chick", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"front_facing_baby_chick"}},
	{2250, "\U0001f426", "bird", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bird"}},
	{2251, "\U0001f427", "penguin", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"penguin"}},
	{2252, "\U0001f54a\ufe0f", "dove", AnimalsAndNature, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"dove"}},
	{2253, "\U0001f985", "eagle", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"eagle"}},
	{2254, "\U0001f986", "duck", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"duck"}},
	{2255, "\U0001f9a2", "swan", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"swan"}},
	{2256, "\U0001f989", "owl", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"owl"}},
	{2257, "\U0001f9a4", "dodo", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"dodo"}},
	{2258, "\U0001fab6", "feather", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"feather"}},
	{2259, "\U0001f9a9", "flamingo", AnimalsAndNature, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"flamingo"}},
	{2260, "\U0001f99a", "peacock", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"peacock"}},
	{2261, "\U0001f99c", "parrot", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"parrot"}},
	{2262, "\U0001fabd", "wing", AnimalsAndNature, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"wing"}},
	{2263, "\U0001f426\u200d\u2b1b", "black bird", AnimalsAndNature, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"black_bird"}},
	{2264, "\U0001fabf", "goose", AnimalsAndNature, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"goose"}},
	{2265, "\U0001f426\u200d\U0001f525", "phoenix", AnimalsAndNature, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"phoenix"}},
	{2266, "\U0001f438", "frog", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"frog"}},
	{2267, "\U0001f40a", "crocodile", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"crocodile"}},
	{2268, "\U0001f422", "turtle", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"turtle"}},
	{2269, "\U0001f98e", "lizard", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"lizard"}},
	{2270, "\U0001f40d", "snake", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"snake"}},
	{2271, "\U0001f432", "dragon face", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dragon_face"}},
	{2272, "\U0001f409", "dragon", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"dragon"}},
	{2273, "\U0001f995", "sauropod", AnimalsAndNature, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"sauropod"}},
	{2274, "\U0001f996", "T-Rex", AnimalsAndNature, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"t_rex"}},
	{2275, "\U0001f433", "spouting whale", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"whale"}},
	{2276, "\U0001f40b", "whale", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"whale2"}},
	{2277, "\U0001f42c", "dolphin", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dolphin", "flipper"}},
	{2278, "\U0001f9ad", "seal", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"seal"}},
	{2279, "\U0001f41f", "fish", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fish"}},
	{2280, "\U0001f420", "tropical fish", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tropical_fish"}},
	{2281, "\U0001f421", "blowfish", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"blowfish"}},
	{2282, "\U0001f988", "shark", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"shark"}},
	{2283, "\U0001f419", "octopus", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"octopus"}},
	{2284, "\U0001f41a", "spiral shell", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"spiral_shell"}},
	{2285, "\U0001fab8", "coral", AnimalsAndNature, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"coral"}},
	{2286, "\U0001fabc", "jellyfish", AnimalsAndNature, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"jellyfish"}},
	{2287, "\U0001f40c", "snail", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"snail"}},
	{2288, "\U0001f98b", "butterfly", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"butterfly"}},
	{2289, "\U0001f41b", "bug", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bug"}},
	{2290, "\U0001f41c", "ant", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ant"}},
	{2291, "\U0001f41d", "honeybee", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bee", "honeybee"}},
	{2292, "\U0001fab2", "beetle", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"beetle"}},
	{2293, "\U0001f41e", "lady beetle", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"lady_beetle"}},
	{2294, "\U0001f997", "cricket", AnimalsAndNature, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"cricket"}},
	{2295, "\U0001fab3", "cockroach", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"cockroach"}},
	{2296, "\U0001f577\ufe0f", "spider", AnimalsAndNature, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"spider"}},
	{2297, "\U0001f578\ufe0f", "spider web", AnimalsAndNature, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"spider_web"}},
	{2298, "\U0001f982", "scorpion", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"scorpion"}},
	{2299, "\U0001f99f", "mosquito", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"mosquito"}},
	{2300, "\U0001fab0", "fly", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"fly"}},
	{2301, "\U0001fab1", "worm", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"worm"}},
	{2302, "\U0001f9a0", "microbe", AnimalsAndNature, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"microbe"}},
	{2303, "\U0001f490", "bouquet", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bouquet"}},
	{2304, "\U0001f338", "cherry blossom", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cherry_blossom"}},
	{2305, "\U0001f4ae", "white flower", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_flower"}},
	{2306, "\U0001fab7", "lotus", AnimalsAndNature, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"lotus"}},
	{2307, "\U0001f3f5\ufe0f", "rosette", AnimalsAndNature, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"rosette"}},
	{2308, "\U0001f339", "rose", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"rose"}},
	{2309, "\U0001f940", "wilted flower", AnimalsAndNature, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"wilted_flower"}},
	{2310, "\U0001f33a", "hibiscus", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hibiscus"}},
	{2311, "\U0001f33b", "sunflower", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sunflower"}},
	{2312, "\U0001f33c", "blossom", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"blossom"}},
	{2313, "\U0001f337", "tulip", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tulip"}},
	{2314, "\U0001fabb", "hyacinth", AnimalsAndNature, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"hyacinth"}},
	{2315, "\U0001f331", "seedling", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"seedling"}},
	{2316, "\U0001fab4", "potted plant", AnimalsAndNature, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"potted_plant"}},
	{2317, "\U0001f332", "evergreen tree", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"evergreen_tree"}},
	{2318, "\U0001f333", "deciduous tree", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"deciduous_tree"}},
	{2319, "\U0001f334", "palm tree", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"palm_tree"}},
	{2320, "\U0001f335", "cactus", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cactus"}},
	{2321, "\U0001f33e", "sheaf of rice", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sheaf_of_rice"}},
	{2322, "\U0001f33f", "herb", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"herb"}},
	{2323, "\u2618\ufe0f", "shamrock", AnimalsAndNature, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"shamrock"}},
	{2324, "\U0001f340", "four leaf clover", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"four_leaf_clover"}},
	{2325, "\U0001f341", "maple leaf", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"maple_leaf"}},
	{2326, "\U0001f342", "fallen leaf", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fallen_leaf"}},
	{2327, "\U0001f343", "leaf fluttering in wind", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"leaf_fluttering_in_wind"}},
	{2328, "\U0001fab9", "empty nest", AnimalsAndNature, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"empty_nest"}},
	{2329, "\U0001faba", "nest with eggs", AnimalsAndNature, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"nest_with_eggs"}},
	{2330, "\U0001f344", "mushroom", AnimalsAndNature, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"mushroom"}},
	{2331, "\U0001f347", "grapes", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"grapes"}},
	{2332, "\U0001f348", "melon", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"melon"}},
	{2333, "\U0001f349", "watermelon", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"watermelon"}},
	{2334, "\U0001f34a", "tangerine", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tangerine", "orange", "mandarin"}},
	{2335, "\U0001f34b", "lemon", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"lemon"}},
	{2336, "\U0001f34b\u200d\U0001f7e9", "lime", FoodAndDrink, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"lime"}},
	{2337, "\U0001f34c", "banana", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"banana"}},
	{2338, "\U0001f34d", "pineapple", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pineapple"}},
	{2339, "\U0001f96d", "mango", FoodAndDrink, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"mango"}},
	{2340, "\U0001f34e", "red apple", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"apple"}},
	{2341, "\U0001f34f", "green apple", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"green_apple"}},
	{2342, "\U0001f350", "pear", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"pear"}},
	{2343, "\U0001f351", "peach", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"peach"}},
	{2344, "\U0001f352", "cherries", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cherries"}},
	{2345, "\U0001f353", "strawberry", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"strawberry"}},
	{2346, "\U0001fad0", "blueberries", FoodAndDrink, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"blueberries"}},
	{2347, "\U0001f95d", "kiwi fruit", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"kiwi_fruit"}},
	{2348, "\U0001f345", "tomato", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tomato"}},
	{2349, "\U0001fad2", "olive", FoodAndDrink, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"olive"}},
	{2350, "\U0001f965", "coconut", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"coconut"}},
	{2351, "\U0001f951", "avocado", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"avocado"}},
	{2352, "\U0001f346", "eggplant", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"eggplant"}},
	{2353, "\U0001f954", "potato", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"potato"}},
	{2354, "\U0001f955", "carrot", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"carrot"}},
	{2355, "\U0001f33d", "ear of corn", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"corn"}},
	{2356, "\U0001f336\ufe0f", "hot pepper", FoodAndDrink, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"hot_pepper"}},
	{2357, "\U0001fad1", "bell pepper", FoodAndDrink, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"bell_pepper"}},
	{2358, "\U0001f952", "cucumber", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"cucumber"}},
	{2359, "\U0001f96c", "leafy green", FoodAndDrink, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"leafy_green"}},
	{2360, "\U0001f966", "broccoli", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"broccoli"}},
	{2361, "\U0001f9c4", "garlic", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"garlic"}},
	{2362, "\U0001f9c5", "onion", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"onion"}},
	{2363, "\U0001f95c", "peanuts", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"peanuts"}},
	{2364, "\U0001fad8", "beans", FoodAndDrink, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"beans"}},
	{2365, "\U0001f330", "chestnut", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"chestnut"}},
	{2366, "\U0001fada", "ginger root", FoodAndDrink, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"ginger_root"}},
	{2367, "\U0001fadb", "pea pod", FoodAndDrink, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"pea_pod"}},
	{2368, "\U0001f344\u200d\U0001f7eb", "brown mushroom", FoodAndDrink, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"brown_mushroom"}},
	{2369, "\U0001f35e", "bread", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bread"}},
	{2370, "\U0001f950", "croissant", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"croissant"}},
	{2371, "\U0001f956", "baguette bread", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"baguette_bread"}},
	{2372, "\U0001fad3", "flatbread", FoodAndDrink, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"flatbread"}},
	{2373, "\U0001f968", "pretzel", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"pretzel"}},
	{2374, "\U0001f96f", "bagel", FoodAndDrink, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"bagel"}},
	{2375, "\U0001f95e", "pancakes", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"pancakes"}},
	{2376, "\U0001f9c7", "waffle", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"waffle"}},
	{2377, "\U0001f9c0", "cheese wedge", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"cheese"}},
	{2378, "\U0001f356", "meat on bone", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"meat_on_bone"}},
	{2379, "\U0001f357", "poultry leg", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"poultry_leg"}},
	{2380, "\U0001f969", "cut of meat", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"cut_of_meat"}},
	{2381, "\U0001f953", "bacon", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"bacon"}},
	{2382, "\U0001f354", "hamburger", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hamburger"}},
	{2383, "\U0001f35f", "french fries", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fries"}},
	{2384, "\U0001f355", "pizza", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pizza"}},
	{2385, "\U0001f32d", "hot dog", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"hotdog"}},
	{2386, "\U0001f96a", "sandwich", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"sandwich"}},
	{2387, "\U0001f32e", "taco", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"taco"}},
	{2388, "\U0001f32f", "burrito", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"burrito"}},
	{2389, "\U0001fad4", "tamale", FoodAndDrink, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"tamale"}},
	{2390, "\U0001f959", "stuffed flatbread", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"stuffed_flatbread"}},
	{2391, "\U0001f9c6", "falafel", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"falafel"}},
	{2392, "\U0001f95a", "egg", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"egg"}},
	{2393, "\U0001f373", "cooking", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cooking"}},
	{2394, "\U0001f958", "shallow pan of food", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"shallow_pan_of_food"}},
	{2395, "\U0001f372", "pot of food", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pot_of_food"}},
	{2396, "\U0001fad5", "fondue", FoodAndDrink, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"fondue"}},
	{2397, "\U0001f963", "bowl with spoon", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"bowl_with_spoon"}},
	{2398, "\U0001f957", "green salad", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"green_salad"}},
	{2399, "\U0001f37f", "popcorn", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"popcorn"}},
	{2400, "\U0001f9c8", "butter", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"butter"}},
	{2401, "\U0001f9c2", "salt", FoodAndDrink, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"salt"}},
	{2402, "\U0001f96b", "canned food", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"canned_food"}},
	{2403, "\U0001f371", "bento box", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bento_box"}},
	{2404, "\U0001f358", "rice cracker", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"rice_cracker"}},
	{2405, "\U0001f359", "rice ball", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"rice_ball"}},
	{2406, "\U0001f35a", "cooked rice", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"rice"}},
	{2407, "\U0001f35b", "curry rice", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"curry_rice"}},
	{2408, "\U0001f35c", "steaming bowl", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"steaming_bowl"}},
	{2409, "\U0001f35d", "spaghetti", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"spaghetti"}},
	{2410, "\U0001f360", "roasted sweet potato", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"roasted_sweet_potato"}},
	{2411, "\U0001f362", "oden", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"oden"}},
	{2412, "\U0001f363", "sushi", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sushi"}},
	{2413, "\U0001f364", "fried shrimp", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fried_shrimp"}},
	{2414, "\U0001f365", "fish cake with swirl", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fish_cake_with_swirl"}},
	{2415, "\U0001f96e", "moon cake", FoodAndDrink, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"moon_cake"}},
	{2416, "\U0001f361", "dango", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dango"}},
	{2417, "\U0001f95f", "dumpling", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"dumpling"}},
	{2418, "\U0001f960", "fortune cookie", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"fortune_cookie"}},
	{2419, "\U0001f961", "takeout box", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"takeout_box"}},
	{2420, "\U0001f980", "crab", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"crab"}},
	{2421, "\U0001f99e", "lobster", FoodAndDrink, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"lobster"}},
	{2422, "\U0001f990", "shrimp", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"shrimp"}},
	{2423, "\U0001f991", "squid", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"squid"}},
	{2424, "\U0001f9aa", "oyster", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"oyster"}},
	{2425, "\U0001f366", "soft ice cream", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"icecream"}},
	{2426, "\U0001f367", "shaved ice", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"shaved_ice"}},
	{2427, "\U0001f368", "ice cream", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ice_cream"}},
	{2428, "\U0001f369", "doughnut", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"doughnut"}},
	{2429, "\U0001f36a", "cookie", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cookie"}},
	{2430, "\U0001f382", "birthday cake", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"birthday"}},
	{2431, "\U0001f370", "shortcake", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"shortcake"}},
	{2432, "\U0001f9c1", "cupcake", FoodAndDrink, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"cupcake"}},
	{2433, "\U0001f967", "pie", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"pie"}},
	{2434, "\U0001f36b", "chocolate bar", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"chocolate_bar"}},
	{2435, "\U0001f36c", "candy", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"candy"}},
	{2436, "\U0001f36d", "lollipop", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"lollipop"}},
	{2437, "\U0001f36e", "custard", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"custard"}},
	{2438, "\U0001f36f", "honey pot", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"honey_pot"}},
	{2439, "\U0001f37c", "baby bottle", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"baby_bottle"}},
	{2440, "\U0001f95b", "glass of milk", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"glass_of_milk"}},
	{2441, "\u2615", "hot beverage", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"coffee"}},
	{2442, "\U0001fad6", "teapot", FoodAndDrink, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"teapot"}},
	{2443, "\U0001f375", "teacup without handle", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tea"}},
	{2444, "\U0001f376", "sake", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sake"}},
	{2445, "\U0001f37e", "bottle with popping cork", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"bottle_with_popping_cork"}},
	{2446, "\U0001f377", "wine glass", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"wine_glass"}},
	{2447, "\U0001f378", "cocktail glass", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cocktail"}},
	{2448, "\U0001f379", "tropical drink", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tropical_drink"}},
	{2449, "\U0001f37a", "beer mug", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"beer"}},
	{2450, "\U0001f37b", "clinking beer mugs", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"beers"}},
	{2451, "\U0001f942", "clinking glasses", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"clinking_glasses"}},
	{2452, "\U0001f943", "tumbler glass", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"tumbler_glass"}},
	{2453, "\U0001fad7", "pouring liquid", FoodAndDrink, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"pouring_liquid"}},
	{2454, "\U0001f964", "cup with straw", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"cup_with_straw"}},
	{2455, "\U0001f9cb", "bubble tea", FoodAndDrink, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"bubble_tea"}},
	{2456, "\U0001f9c3", "beverage box", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"beverage_box"}},
	{2457, "\U0001f9c9", "mate", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"mate"}},
	{2458, "\U0001f9ca", "ice", FoodAndDrink, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"ice"}},
	{2459, "\U0001f962", "chopsticks", FoodAndDrink, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"chopsticks"}},
	{2460, "\U0001f37d\ufe0f", "fork and knife with plate", FoodAndDrink, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"fork_and_knife_with_plate"}},
	{2461, "\U0001f374", "fork and knife", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fork_and_knife"}},
	{2462, "\U0001f944", "spoon", FoodAndDrink, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"spoon"}},
	{2463, "\U0001f52a", "kitchen knife", FoodAndDrink, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"kitchen_knife"}},
	{2464, "\U0001fad9", "jar", FoodAndDrink, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"jar"}},
	{2465, "\U0001f3fa", "amphora", FoodAndDrink, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"amphora"}},
	{2466, "\U0001f30d", "globe showing Europe-Africa", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"earth_africa"}},
	{2467, "\U0001f30e", "globe showing Americas", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"earth_americas"}},
	{2468, "\U0001f30f", "globe showing Asia-Australia", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"earth_asia"}},
	{2469, "\U0001f310", "globe with meridians", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"globe_with_meridians"}},
	{2470, "\U0001f5fa\ufe0f", "world map", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"world_map"}},
	{2471, "\U0001f5fe", "map of Japan", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"map_of_japan"}},
	{2472, "\U0001f9ed", "compass", TravelAndPlaces, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"compass"}},
	{2473, "\U0001f3d4\ufe0f", "snow-capped mountain", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"snow_capped_mountain"}},
	{2474, "\u26f0\ufe0f", "mountain", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"mountain"}},
	{2475, "\U0001f30b", "volcano", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"volcano"}},
	{2476, "\U0001f5fb", "mount fuji", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"mount_fuji"}},
	{2477, "\U0001f3d5\ufe0f", "camping", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"camping"}},
	{2478, "\U0001f3d6\ufe0f", "beach with umbrella", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"beach_with_umbrella"}},
	{2479, "\U0001f3dc\ufe0f", "desert", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"desert"}},
	{2480, "\U0001f3dd\ufe0f", "desert island", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"desert_island"}},
	{2481, "\U0001f3de\ufe0f", "national park", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"national_park"}},
	{2482, "\U0001f3df\ufe0f", "stadium", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"stadium"}},
	{2483, "\U0001f3db\ufe0f", "classical building", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"classical_building"}},
	{2484, "\U0001f3d7\ufe0f", "building construction", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"building_construction"}},
	{2485, "\U0001f9f1", "brick", TravelAndPlaces, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"brick"}},
	{2486, "\U0001faa8", "rock", TravelAndPlaces, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"rock"}},
	{2487, "\U0001fab5", "wood", TravelAndPlaces, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"wood"}},
	{2488, "\U0001f6d6", "hut", TravelAndPlaces, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"hut"}},
	{2489, "\U0001f3d8\ufe0f", "houses", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"houses"}},
	{2490, "\U0001f3da\ufe0f", "derelict house", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"derelict_house"}},
	{2491, "\U0001f3e0", "house", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"house"}},
	{2492, "\U0001f3e1", "house with garden", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"house_with_garden"}},
	{2493, "\U0001f3e2", "office building", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"office"}},
	{2494, "\U0001f3e3", "Japanese post office", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_post_office"}},
	{2495, "\U0001f3e4", "post office", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"post_office"}},
	{2496, "\U0001f3e5", "hospital", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hospital"}},
	{2497, "\U0001f3e6", "bank", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bank"}},
	{2498, "\U0001f3e8", "hotel", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hotel"}},
	{2499, "\U0001f3e9", "love hotel", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"love_hotel"}},
	{2500, "\U0001f3ea", "convenience store", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"convenience_store"}},
	{2501, "\U0001f3eb", "school", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"school"}},
	{2502, "\U0001f3ec", "department store", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"department_store"}},
	{2503, "\U0001f3ed", "factory", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"factory"}},
	{2504, "\U0001f3ef", "Japanese castle", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_castle"}},
	{2505, "\U0001f3f0", "castle", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"castle"}},
	{2506, "\U0001f492", "wedding", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"wedding"}},
	{2507, "\U0001f5fc", "Tokyo tower", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tokyo_tower"}},
	{2508, "\U0001f5fd", "Statue of Liberty", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"statue_of_liberty"}},
	{2509, "\u26ea", "church", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"church"}},
	{2510, "\U0001f54c", "mosque", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"mosque"}},
	{2511, "\U0001f6d5", "hindu temple", TravelAndPlaces, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"hindu_temple"}},
	{2512, "\U0001f54d", "synagogue", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"synagogue"}},
	{2513, "\u26e9\ufe0f", "shinto shrine", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"shinto_shrine"}},
	{2514, "\U0001f54b", "kaaba", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"kaaba"}},
	{2515, "\u26f2", "fountain", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fountain"}},
	{2516, "\u26fa", "tent", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tent"}},
	{2517, "\U0001f301", "foggy", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"foggy"}},
	{2518, "\U0001f303", "night with stars", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"night_with_stars"}},
	{2519, "\U0001f3d9\ufe0f", "cityscape", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"cityscape"}},
	{2520, "\U0001f304", "sunrise over mountains", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sunrise_over_mountains"}},
	{2521, "\U0001f305", "sunrise", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sunrise"}},
	{2522, "\U0001f306", "cityscape at dusk", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cityscape_at_dusk"}},
	{2523, "\U0001f307", "sunset", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sunset"}},
	{2524, "\U0001f309", "bridge at night", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bridge_at_night"}},
	{2525, "\u2668\ufe0f", "hot springs", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hot_springs"}},
	{2526, "\U0001f3a0", "carousel horse", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"carousel_horse"}},
	{2527, "\U0001f6dd", "playground slide", TravelAndPlaces, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"playground_slide"}},
	{2528, "\U0001f3a1", "ferris wheel", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ferris_wheel"}},
	{2529, "\U0001f3a2", "roller coaster", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"roller_coaster"}},
	{2530, "\U0001f488", "barber pole", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"barber_pole"}},
	{2531, "\U0001f3aa", "circus tent", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"circus_tent"}},
	{2532, "\U0001f682", "locomotive", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"steam_locomotive"}},
	{2533, "\U0001f683", "railway car", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"railway_car"}},
	{2534, "\U0001f684", "high-speed train", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"high_speed_train"}},
	{2535, "\U0001f685", "bullet train", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bullet_train"}},
	{2536, "\U0001f686", "train", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"train"}},
	{2537, "\U0001f687", "metro", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"metro"}},
	{2538, "\U0001f688", "light rail", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"light_rail"}},
	{2539, "\U0001f689", "station", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"station"}},
	{2540, "\U0001f68a", "tram", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"tram"}},
	{2541, "\U0001f69d", "monorail", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"monorail"}},
	{2542, "\U0001f69e", "mountain railway", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"mountain_railway"}},
	{2543, "\U0001f68b", "tram car", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"tram_car"}},
	{2544, "\U0001f68c", "bus", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bus"}},
	{2545, "\U0001f68d", "oncoming bus", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"oncoming_bus"}},
	{2546, "\U0001f68e", "trolleybus", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"trolleybus"}},
	{2547, "\U0001f690", "minibus", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"minibus"}},
	{2548, "\U0001f691", "ambulance", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ambulance"}},
	{2549, "\U0001f692", "fire engine", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fire_engine"}},
	{2550, "\U0001f693", "police car", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"police_car"}},
	{2551, "\U0001f694", "oncoming police car", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"oncoming_police_car"}},
	{2552, "\U0001f695", "taxi", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"taxi"}},
	{2553, "\U0001f696", "oncoming taxi", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"oncoming_taxi"}},
	{2554, "\U0001f697", "automobile", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"car", "red_car"}},
	{2555, "\U0001f698", "oncoming automobile", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"oncoming_automobile"}},
	{2556, "\U0001f699", "sport utility vehicle", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sport_utility_vehicle"}},
	{2557, "\U0001f6fb", "pickup truck", TravelAndPlaces, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"pickup_truck"}},
	{2558, "\U0001f69a", "delivery truck", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"delivery_truck"}},
	{2559, "\U0001f69b", "articulated lorry", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"articulated_lorry"}},
	{2560, "\U0001f69c", "tractor", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"tractor"}},
	{2561, "\U0001f3ce\ufe0f", "racing car", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"racing_car"}},
	{2562, "\U0001f3cd\ufe0f", "motorcycle", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"motorcycle"}},
	{2563, "\U0001f6f5", "motor scooter", TravelAndPlaces, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"motor_scooter"}},
	{2564, "\U0001f9bd", "manual wheelchair", TravelAndPlaces, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"manual_wheelchair"}},
	{2565, "\U0001f9bc", "motorized wheelchair", TravelAndPlaces, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"motorized_wheelchair"}},
	{2566, "\U0001f6fa", "auto rickshaw", TravelAndPlaces, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"auto_rickshaw"}},
	{2567, "\U0001f6b2", "bicycle", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bike"}},
	{2568, "\U0001f6f4", "kick scooter", TravelAndPlaces, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"kick_scooter"}},
	{2569, "\U0001f6f9", "skateboard", TravelAndPlaces, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"skateboard"}},
	{2570, "\U0001f6fc", "roller skate", TravelAndPlaces, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"roller_skate"}},
	{2571, "\U0001f68f", "bus stop", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bus_stop"}},
	{2572, "\U0001f6e3\ufe0f", "motorway", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"motorway"}},
	{2573, "\U0001f6e4\ufe0f", "railway track", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"railway_track"}},
	{2574, "\U0001f6e2\ufe0f", "oil drum", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"oil_drum"}},
	{2575, "\u26fd", "fuel pump", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fuel_pump"}},
	{2576, "\U0001f6de", "wheel", TravelAndPlaces, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"wheel"}},
	{2577, "\U0001f6a8", "police car light", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"police_car_light"}},
	{2578, "\U0001f6a5", "horizontal traffic light", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"horizontal_traffic_light"}},
	{2579, "\U0001f6a6", "vertical traffic light", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"vertical_traffic_light"}},
	{2580, "\U0001f6d1", "stop sign", TravelAndPlaces, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"stop_sign"}},
	{2581, "\U0001f6a7", "construction", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"construction"}},
	{2582, "\u2693", "anchor", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"anchor"}},
	{2583, "\U0001f6df", "ring buoy", TravelAndPlaces, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"ring_buoy"}},
	{2584, "\u26f5", "sailboat", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"boat", "sailboat"}},
	{2585, "\U0001f6f6", "canoe", TravelAndPlaces, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"canoe"}},
	{2586, "\U0001f6a4", "speedboat", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"speedboat"}},
	{2587, "\U0001f6f3\ufe0f", "passenger ship", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"passenger_ship"}},
	{2588, "\u26f4\ufe0f", "ferry", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"ferry"}},
	{2589, "\U0001f6e5\ufe0f", "motor boat", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"motor_boat"}},
	{2590, "\U0001f6a2", "ship", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ship"}},
	{2591, "\u2708\ufe0f", "airplane", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"airplane"}},
	{2592, "\U0001f6e9\ufe0f", "small airplane", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"small_airplane"}},
	{2593, "\U0001f6eb", "airplane departure", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"airplane_departure"}},
	{2594, "\U0001f6ec", "airplane arrival", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"airplane_arrival"}},
	{2595, "\U0001fa82", "parachute", TravelAndPlaces, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"parachute"}},
	{2596, "\U0001f4ba", "seat", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"seat"}},
	{2597, "\U0001f681", "helicopter", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"helicopter"}},
	{2598, "\U0001f69f", "suspension railway", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"suspension_railway"}},
	{2599, "\U0001f6a0", "mountain cableway", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"mountain_cableway"}},
	{2600, "\U0001f6a1", "aerial tramway", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"aerial_tramway"}},
	{2601, "\U0001f6f0\ufe0f", "satellite", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"satellite"}},
	{2602, "\U0001f680", "rocket", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"rocket"}},
	{2603, "\U0001f6f8", "flying saucer", TravelAndPlaces, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"flying_saucer"}},
	{2604, "\U0001f6ce\ufe0f", "bellhop bell", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"bellhop_bell"}},
	{2605, "\U0001f9f3", "luggage", TravelAndPlaces, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"luggage"}},
	{2606, "\u231b", "hourglass done", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hourglass"}},
	{2607, "\u23f3", "hourglass not done", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hourglass_not_done"}},
	{2608, "\u231a", "watch", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"watch"}},
	{2609, "\u23f0", "alarm clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"alarm_clock"}},
	{2610, "\u23f1\ufe0f", "stopwatch", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"stopwatch"}},
	{2611, "\u23f2\ufe0f", "timer clock", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"timer_clock"}},
	{2612, "\U0001f570\ufe0f", "mantelpiece clock", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"mantelpiece_clock"}},
	{2613, "\U0001f55b", "twelve o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"twelve_o_clock"}},
	{2614, "\U0001f567", "twelve-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"twelve_thirty"}},
	{2615, "\U0001f550", "one o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"one_o_clock"}},
	{2616, "\U0001f55c", "one-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"one_thirty"}},
	{2617, "\U0001f551", "two o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"two_o_clock"}},
	{2618, "\U0001f55d", "two-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"two_thirty"}},
	{2619, "\U0001f552", "three o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"three_o_clock"}},
	{2620, "\U0001f55e", "three-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"three_thirty"}},
	{2621, "\U0001f553", "four o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"four_o_clock"}},
	{2622, "\U0001f55f", "four-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"four_thirty"}},
	{2623, "\U0001f554", "five o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"five_o_clock"}},
	{2624, "\U0001f560", "five-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"five_thirty"}},
	{2625, "\U0001f555", "six o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"six_o_clock"}},
	{2626, "\U0001f561", "six-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"six_thirty"}},
	{2627, "\U0001f556", "seven o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"seven_o_clock"}},
	{2628, "\U0001f562", "seven-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"seven_thirty"}},
	{2629, "\U0001f557", "eight o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"eight_o_clock"}},
	{2630, "\U0001f563", "eight-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"eight_thirty"}},
	{2631, "\U0001f558", "nine o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"nine_o_clock"}},
	{2632, "\U0001f564", "nine-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"nine_thirty"}},
	{2633, "\U0001f559", "ten o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ten_o_clock"}},
	{2634, "\U0001f565", "ten-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"ten_thirty"}},
	{2635, "\U0001f55a", "eleven o’clock", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"eleven_o_clock"}},
	{2636, "\U0001f566", "eleven-thirty", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"eleven_thirty"}},
	{2637, "\U0001f311", "new moon", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"new_moon"}},
	{2638, "\U0001f312", "waxing crescent moon", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"waxing_crescent_moon"}},
	{2639, "\U0001f313", "first quarter moon", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"first_quarter_moon"}},
	{2640, "\U0001f314", "waxing gibbous moon", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"waxing_gibbous_moon"}},
	{2641, "\U0001f315", "full moon", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"full_moon"}},
	{2642, "\U0001f316", "waning gibbous moon", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"waning_gibbous_moon"}},
	{2643, "\U0001f317", "last quarter moon", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"last_quarter_moon"}},
	{2644, "\U0001f318", "waning crescent moon", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"waning_crescent_moon"}},
	{2645, "\U0001f319", "crescent moon", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"crescent_moon"}},
	{2646, "\U0001f31a", "new moon face", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"new_moon_face"}},
	{2647, "\U0001f31b", "first quarter moon face", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"first_quarter_moon_face"}},
	{2648, "\U0001f31c", "last quarter moon face", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"last_quarter_moon_face"}},
	{2649, "\U0001f321\ufe0f", "thermometer", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"thermometer"}},
	{2650, "\u2600\ufe0f", "sun", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sunny"}},
	{2651, "\U0001f31d", "full moon face", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"full_moon_face"}},
	{2652, "\U0001f31e", "sun with face", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"sun_with_face"}},
	{2653, "\U0001fa90", "ringed planet", TravelAndPlaces, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"ringed_planet"}},
	{2654, "\u2b50", "star", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"star"}},
	{2655, "\U0001f31f", "glowing star", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"star2"}},
	{2656, "\U0001f320", "shooting star", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"shooting_star"}},
	{2657, "\U0001f30c", "milky way", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"milky_way"}},
	{2658, "\u2601\ufe0f", "cloud", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cloud"}},
	{2659, "\u26c5", "sun behind cloud", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sun_behind_cloud"}},
	{2660, "\u26c8\ufe0f", "cloud with lightning and rain", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"cloud_with_lightning_and_rain"}},
	{2661, "\U0001f324\ufe0f", "sun behind small cloud", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"sun_behind_small_cloud"}},
	{2662, "\U0001f325\ufe0f", "sun behind large cloud", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"sun_behind_large_cloud"}},
	{2663, "\U0001f326\ufe0f", "sun behind rain cloud", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"sun_behind_rain_cloud"}},
	{2664, "\U0001f327\ufe0f", "cloud with rain", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"cloud_with_rain"}},
	{2665, "\U0001f328\ufe0f", "cloud with snow", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"cloud_with_snow"}},
	{2666, "\U0001f329\ufe0f", "cloud with lightning", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"cloud_with_lightning"}},
	{2667, "\U0001f32a\ufe0f", "tornado", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"tornado"}},
	{2668, "\U0001f32b\ufe0f", "fog", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"fog"}},
	{2669, "\U0001f32c\ufe0f", "wind face", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"wind_face"}},
	{2670, "\U0001f300", "cyclone", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cyclone"}},
	{2671, "\U0001f308", "rainbow", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"rainbow"}},
	{2672, "\U0001f302", "closed umbrella", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"closed_umbrella"}},
	{2673, "\u2602\ufe0f", "umbrella", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"open_umbrella"}},
	{2674, "\u2614", "umbrella with rain drops", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"umbrella_with_rain_drops"}},
	{2675, "\u26f1\ufe0f", "umbrella on ground", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"umbrella_on_ground"}},
	{2676, "\u26a1", "high voltage", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"zap"}},
	{2677, "\u2744\ufe0f", "snowflake", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"snowflake"}},
	{2678, "\u2603\ufe0f", "snowman", TravelAndPlaces, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"snowman_with_snow"}},
	{2679, "\u26c4", "snowman without snow", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"snowman_without_snow"}},
	{2680, "\u2604\ufe0f", "comet", TravelAndPlaces, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"comet"}},
	{2681, "\U0001f525", "fire", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fire"}},
	{2682, "\U0001f4a7", "droplet", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"droplet"}},
	{2683, "\U0001f30a", "water wave", TravelAndPlaces, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ocean"}},
	{2684, "\U0001f383", "jack-o-lantern", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"jack_o_lantern"}},
	{2685, "\U0001f384", "Christmas tree", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"christmas_tree"}},
	{2686, "\U0001f386", "fireworks", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fireworks"}},
	{2687, "\U0001f387", "sparkler", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sparkler"}},
	{2688, "\U0001f9e8", "firecracker", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"firecracker"}},
	{2689, "\u2728", "sparkles", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sparkles"}},
	{2690, "\U0001f388", "balloon", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"balloon"}},
	{2691, "\U0001f389", "party popper", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tada"}},
	{2692, "\U0001f38a", "confetti ball", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"confetti_ball"}},
	{2693, "\U0001f38b", "tanabata tree", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tanabata_tree"}},
	{2694, "\U0001f38d", "pine decoration", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pine_decoration"}},
	{2695, "\U0001f38e", "Japanese dolls", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_dolls"}},
	{2696, "\U0001f38f", "carp streamer", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"carp_streamer"}},
	{2697, "\U0001f390", "wind chime", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"wind_chime"}},
	{2698, "\U0001f391", "moon viewing ceremony", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"moon_viewing_ceremony"}},
	{2699, "\U0001f9e7", "red envelope", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"red_envelope"}},
	{2700, "\U0001f380", "ribbon", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ribbon"}},
	{2701, "\U0001f381", "wrapped gift", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"gift"}},
	{2702, "\U0001f397\ufe0f", "reminder ribbon", Activities, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"reminder_ribbon"}},
	{2703, "\U0001f39f\ufe0f", "admission tickets", Activities, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"admission_tickets"}},
	{2704, "\U0001f3ab", "ticket", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ticket"}},
	{2705, "\U0001f396\ufe0f", "military medal", Activities, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"military_medal"}},
	{2706, "\U0001f3c6", "trophy", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"trophy"}},
	{2707, "\U0001f3c5", "sports medal", Activities, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"sports_medal"}},
	{2708, "\U0001f947", "1st place medal", Activities, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"1st_place_medal"}},
	{2709, "\U0001f948", "2nd place medal", Activities, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"2nd_place_medal"}},
	{2710, "\U0001f949", "3rd place medal", Activities, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"3rd_place_medal"}},
	{2711, "\u26bd", "soccer ball", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"soccer"}},
	{2712, "\u26be", "baseball", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"baseball"}},
	{2713, "\U0001f94e", "softball", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"softball"}},
	{2714, "\U0001f3c0", "basketball", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"basketball"}},
	{2715, "\U0001f3d0", "volleyball", Activities, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"volleyball"}},
	{2716, "\U0001f3c8", "american football", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"football"}},
	{2717, "\U0001f3c9", "rugby football", Activities, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"rugby_football"}},
	{2718, "\U0001f3be", "tennis", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tennis"}},
	{2719, "\U0001f94f", "flying disc", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"flying_disc"}},
	{2720, "\U0001f3b3", "bowling", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bowling"}},
	{2721, "\U0001f3cf", "cricket game", Activities, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"cricket_game"}},
	{2722, "\U0001f3d1", "field hockey", Activities, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"field_hockey"}},
	{2723, "\U0001f3d2", "ice hockey", Activities, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"ice_hockey"}},
	{2724, "\U0001f94d", "lacrosse", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"lacrosse"}},
	{2725, "\U0001f3d3", "ping pong", Activities, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"ping_pong"}},
	{2726, "\U0001f3f8", "badminton", Activities, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"badminton"}},
	{2727, "\U0001f94a", "boxing glove", Activities, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"boxing_glove"}},
	{2728, "\U0001f94b", "martial arts uniform", Activities, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"martial_arts_uniform"}},
	{2729, "\U0001f945", "goal net", Activities, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"goal_net"}},
	{2730, "\u26f3", "flag in hole", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"flag_in_hole"}},
	{2731, "\u26f8\ufe0f", "ice skate", Activities, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"ice_skate"}},
	{2732, "\U0001f3a3", "fishing pole", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fishing_pole"}},
	{2733, "\U0001f93f", "diving mask", Activities, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"diving_mask"}},
	{2734, "\U0001f3bd", "running shirt", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"running_shirt"}},
	{2735, "\U0001f3bf", "skis", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"skis"}},
	{2736, "\U0001f6f7", "sled", Activities, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"sled"}},
	{2737, "\U0001f94c", "curling stone", Activities, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"curling_stone"}},
	{2738, "\U0001f3af", "bullseye", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bullseye"}},
	{2739, "\U0001fa80", "yo-yo", Activities, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"yo_yo"}},
	{2740, "\U0001fa81", "kite", Activities, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"kite"}},
	{2741, "\U0001f52b", "water pistol", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"water_pistol"}},
	{2742, "\U0001f3b1", "pool 8 ball", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pool_8_ball"}},
	{2743, "\U0001f52e", "crystal ball", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"crystal_ball"}},
	{2744, "\U0001fa84", "magic wand", Activities, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"magic_wand"}},
	{2745, "\U0001f3ae", "video game", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"video_game"}},
	{2746, "\U0001f579\ufe0f", "joystick", Activities, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"joystick"}},
	{2747, "\U0001f3b0", "slot machine", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"slot_machine"}},
	{2748, "\U0001f3b2", "game die", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"game_die"}},
	{2749, "\U0001f9e9", "puzzle piece", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"puzzle_piece"}},
	{2750, "\U0001f9f8", "teddy bear", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"teddy_bear"}},
	{2751, "\U0001fa85", "piñata", Activities, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"pinata"}},
	{2752, "\U0001faa9", "mirror ball", Activities, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"mirror_ball"}},
	{2753, "\U0001fa86", "nesting dolls", Activities, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"nesting_dolls"}},
	{2754, "\u2660\ufe0f", "spade suit", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"spade_suit"}},
	{2755, "\u2665\ufe0f", "heart suit", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"heart_suit"}},
	{2756, "\u2666\ufe0f", "diamond suit", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"diamond_suit"}},
	{2757, "\u2663\ufe0f", "club suit", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"club_suit"}},
	{2758, "\u265f\ufe0f", "chess pawn", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"chess_pawn"}},
	{2759, "\U0001f0cf", "joker", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"joker"}},
	{2760, "\U0001f004", "mahjong red dragon", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"mahjong_red_dragon"}},
	{2761, "\U0001f3b4", "flower playing cards", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"flower_playing_cards"}},
	{2762, "\U0001f3ad", "performing arts", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"performing_arts"}},
	{2763, "\U0001f5bc\ufe0f", "framed picture", Activities, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"framed_picture"}},
	{2764, "\U0001f3a8", "artist palette", Activities, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"artist_palette"}},
	{2765, "\U0001f9f5", "thread", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"thread"}},
	{2766, "\U0001faa1", "sewing needle", Activities, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"sewing_needle"}},
	{2767, "\U0001f9f6", "yarn", Activities, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"yarn"}},
	{2768, "\U0001faa2", "knot", Activities, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"knot"}},
	{2769, "\U0001f453", "glasses", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"eyeglasses"}},
	{2770, "\U0001f576\ufe0f", "sunglasses", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"dark_sunglasses"}},
	{2771, "\U0001f97d", "goggles", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"goggles"}},
	{2772, "\U0001f97c", "lab coat", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"lab_coat"}},
	{2773, "\U0001f9ba", "safety vest", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"safety_vest"}},
	{2774, "\U0001f454", "necktie", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"necktie"}},
	{2775, "\U0001f455", "t-shirt", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"shirt", "tshirt"}},
	{2776, "\U0001f456", "jeans", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"jeans"}},
	{2777, "\U0001f9e3", "scarf", Objects, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"scarf"}},
	{2778, "\U0001f9e4", "gloves", Objects, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"gloves"}},
	{2779, "\U0001f9e5", "coat", Objects, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"coat"}},
	{2780, "\U0001f9e6", "socks", Objects, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"socks"}},
	{2781, "\U0001f457", "dress", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dress"}},
	{2782, "\U0001f458", "kimono", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"kimono"}},
	{2783, "\U0001f97b", "sari", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"sari"}},
	{2784, "\U0001fa71", "one-piece swimsuit", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"one_piece_swimsuit"}},
	{2785, "\U0001fa72", "briefs", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"briefs"}},
	{2786, "\U0001fa73", "shorts", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"shorts"}},
	{2787, "\U0001f459", "bikini", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bikini"}},
	{2788, "\U0001f45a", "woman’s clothes", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"woman_s_clothes"}},
	{2789, "\U0001faad", "folding hand fan", Objects, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"folding_hand_fan"}},
	{2790, "\U0001f45b", "purse", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"purse"}},
	{2791, "\U0001f45c", "handbag", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"handbag"}},
	{2792, "\U0001f45d", "clutch bag", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"clutch_bag"}},
	{2793, "\U0001f6cd\ufe0f", "shopping bags", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"shopping_bags"}},
	{2794, "\U0001f392", "backpack", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"backpack"}},
	{2795, "\U0001fa74", "thong sandal", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"thong_sandal"}},
	{2796, "\U0001f45e", "man’s shoe", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"man_s_shoe"}},
	{2797, "\U0001f45f", "running shoe", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"running_shoe"}},
	{2798, "\U0001f97e", "hiking boot", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"hiking_boot"}},
	{2799, "\U0001f97f", "flat shoe", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"flat_shoe"}},
	{2800, "\U0001f460", "high-heeled shoe", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"high_heeled_shoe"}},
	{2801, "\U0001f461", "woman’s sandal", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"woman_s_sandal"}},
	{2802, "\U0001fa70", "ballet shoes", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"ballet_shoes"}},
	{2803, "\U0001f462", "woman’s boot", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"woman_s_boot"}},
	{2804, "\U0001faae", "hair pick", Objects, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"hair_pick"}},
	{2805, "\U0001f451", "crown", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"crown"}},
	{2806, "\U0001f452", "woman’s hat", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"woman_s_hat"}},
	{2807, "\U0001f3a9", "top hat", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"top_hat"}},
	{2808, "\U0001f393", "graduation cap", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"graduation_cap"}},
	{2809, "\U0001f9e2", "billed cap", Objects, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"billed_cap"}},
	{2810, "\U0001fa96", "military helmet", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"military_helmet"}},
	{2811, "\u26d1\ufe0f", "rescue worker’s helmet", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"rescue_worker_s_helmet"}},
	{2812, "\U0001f4ff", "prayer beads", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"prayer_beads"}},
	{2813, "\U0001f484", "lipstick", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"lipstick"}},
	{2814, "\U0001f48d", "ring", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ring"}},
	{2815, "\U0001f48e", "gem stone", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"gem_stone"}},
	{2816, "\U0001f507", "muted speaker", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"muted_speaker"}},
	{2817, "\U0001f508", "speaker low volume", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"speaker_low_volume"}},
	{2818, "\U0001f509", "speaker medium volume", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"speaker_medium_volume"}},
	{2819, "\U0001f50a", "speaker high volume", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"speaker_high_volume"}},
	{2820, "\U0001f4e2", "loudspeaker", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"loudspeaker"}},
	{2821, "\U0001f4e3", "megaphone", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"megaphone"}},
	{2822, "\U0001f4ef", "postal horn", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"postal_horn"}},
	{2823, "\U0001f514", "bell", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bell"}},
	{2824, "\U0001f515", "bell with slash", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"bell_with_slash"}},
	{2825, "\U0001f3bc", "musical score", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"musical_score"}},
	{2826, "\U0001f3b5", "musical note", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"musical_note"}},
	{2827, "\U0001f3b6", "musical notes", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"musical_notes"}},
	{2828, "\U0001f399\ufe0f", "studio microphone", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"studio_microphone"}},
	{2829, "\U0001f39a\ufe0f", "level slider", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"level_slider"}},
	{2830, "\U0001f39b\ufe0f", "control knobs", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"control_knobs"}},
	{2831, "\U0001f3a4", "microphone", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"microphone"}},
	{2832, "\U0001f3a7", "headphone", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"headphone"}},
	{2833, "\U0001f4fb", "radio", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"radio"}},
	{2834, "\U0001f3b7", "saxophone", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"saxophone"}},
	{2835, "\U0001fa97", "accordion", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"accordion"}},
	{2836, "\U0001f3b8", "guitar", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"guitar"}},
	{2837, "\U0001f3b9", "musical keyboard", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"musical_keyboard"}},
	{2838, "\U0001f3ba", "trumpet", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"trumpet"}},
	{2839, "\U0001f3bb", "violin", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"violin"}},
	{2840, "\U0001fa95", "banjo", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"banjo"}},
	{2841, "\U0001f941", "drum", Objects, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"drum"}},
	{2842, "\U0001fa98", "long drum", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"long_drum"}},
	{2843, "\U0001fa87", "maracas", Objects, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"maracas"}},
	{2844, "\U0001fa88", "flute", Objects, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"flute"}},
	{2845, "\U0001f4f1", "mobile phone", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"iphone"}},
	{2846, "\U0001f4f2", "mobile phone with arrow", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"mobile_phone_with_arrow"}},
	{2847, "\u260e\ufe0f", "telephone", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"telephone"}},
	{2848, "\U0001f4de", "telephone receiver", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"telephone_receiver"}},
	{2849, "\U0001f4df", "pager", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pager"}},
	{2850, "\U0001f4e0", "fax machine", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fax_machine"}},
	{2851, "\U0001f50b", "battery", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"battery"}},
	{2852, "\U0001faab", "low battery", Objects, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"low_battery"}},
	{2853, "\U0001f50c", "electric plug", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"electric_plug"}},
	{2854, "\U0001f4bb", "laptop", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"computer"}},
	{2855, "\U0001f5a5\ufe0f", "desktop computer", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"desktop_computer"}},
	{2856, "\U0001f5a8\ufe0f", "printer", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"printer"}},
	{2857, "\u2328\ufe0f", "keyboard", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"keyboard"}},
	{2858, "\U0001f5b1\ufe0f", "computer mouse", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"computer_mouse"}},
	{2859, "\U0001f5b2\ufe0f", "trackball", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"trackball"}},
	{2860, "\U0001f4bd", "computer disk", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"computer_disk"}},
	{2861, "\U0001f4be", "floppy disk", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"floppy_disk"}},
	{2862, "\U0001f4bf", "optical disk", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"optical_disk"}},
	{2863, "\U0001f4c0", "dvd", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dvd"}},
	{2864, "\U0001f9ee", "abacus", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"abacus"}},
	{2865, "\U0001f3a5", "movie camera", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"movie_camera"}},
	{2866, "\U0001f39e\ufe0f", "film frames", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"film_frames"}},
	{2867, "\U0001f4fd\ufe0f", "film projector", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"film_projector"}},
	{2868, "\U0001f3ac", "clapper board", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"clapper_board"}},
	{2869, "\U0001f4fa", "television", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"television"}},
	{2870, "\U0001f4f7", "camera", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"camera"}},
	{2871, "\U0001f4f8", "camera with flash", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"camera_with_flash"}},
	{2872, "\U0001f4f9", "video camera", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"video_camera"}},
	{2873, "\U0001f4fc", "videocassette", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"videocassette"}},
	{2874, "\U0001f50d", "magnifying glass tilted left", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"magnifying_glass_tilted_left"}},
	{2875, "\U0001f50e", "magnifying glass tilted right", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"magnifying_glass_tilted_right"}},
	{2876, "\U0001f56f\ufe0f", "candle", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"candle"}},
	{2877, "\U0001f4a1", "light bulb", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bulb"}},
	{2878, "\U0001f526", "flashlight", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"flashlight"}},
	{2879, "\U0001f3ee", "red paper lantern", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"red_paper_lantern"}},
	{2880, "\U0001fa94", "diya lamp", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"diya_lamp"}},
	{2881, "\U0001f4d4", "notebook with decorative cover", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"notebook_with_decorative_cover"}},
	{2882, "\U0001f4d5", "closed book", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"closed_book"}},
	{2883, "\U0001f4d6", "open book", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"open_book"}},
	{2884, "\U0001f4d7", "green book", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"green_book"}},
	{2885, "\U0001f4d8", "blue book", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"blue_book"}},
	{2886, "\U0001f4d9", "orange book", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"orange_book"}},
	{2887, "\U0001f4da", "books", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"books"}},
	{2888, "\U0001f4d3", "notebook", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"notebook"}},
	{2889, "\U0001f4d2", "ledger", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ledger"}},
	{2890, "\U0001f4c3", "page with curl", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"page_with_curl"}},
	{2891, "\U0001f4dc", "scroll", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"scroll"}},
	{2892, "\U0001f4c4", "page facing up", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"page_facing_up"}},
	{2893, "\U0001f4f0", "newspaper", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"newspaper"}},
	{2894, "\U0001f5de\ufe0f", "rolled-up newspaper", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"rolled_up_newspaper"}},
	{2895, "\U0001f4d1", "bookmark tabs", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bookmark_tabs"}},
	{2896, "\U0001f516", "bookmark", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bookmark"}},
	{2897, "\U0001f3f7\ufe0f", "label", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"label"}},
	{2898, "\U0001f4b0", "money bag", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"moneybag"}},
	{2899, "\U0001fa99", "coin", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"coin"}},
	{2900, "\U0001f4b4", "yen banknote", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"yen_banknote"}},
	{2901, "\U0001f4b5", "dollar banknote", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dollar_banknote"}},
	{2902, "\U0001f4b6", "euro banknote", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"euro_banknote"}},
	{2903, "\U0001f4b7", "pound banknote", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"pound_banknote"}},
	{2904, "\U0001f4b8", "money with wings", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"money_with_wings"}},
	{2905, "\U0001f4b3", "credit card", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"credit_card"}},
	{2906, "\U0001f9fe", "receipt", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"receipt"}},
	{2907, "\U0001f4b9", "chart increasing with yen", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"chart_increasing_with_yen"}},
	{2908, "\u2709\ufe0f", "envelope", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"email", "envelope"}},
	{2909, "\U0001f4e7", "e-mail", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"e_mail"}},
	{2910, "\U0001f4e8", "incoming envelope", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"incoming_envelope"}},
	{2911, "\U0001f4e9", "envelope with arrow", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"envelope_with_arrow"}},
	{2912, "\U0001f4e4", "outbox tray", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"outbox_tray"}},
	{2913, "\U0001f4e5", "inbox tray", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"inbox_tray"}},
	{2914, "\U0001f4e6", "package", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"package"}},
	{2915, "\U0001f4eb", "closed mailbox with raised flag", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"closed_mailbox_with_raised_flag"}},
	{2916, "\U0001f4ea", "closed mailbox with lowered flag", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"closed_mailbox_with_lowered_flag"}},
	{2917, "\U0001f4ec", "open mailbox with raised flag", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"open_mailbox_with_raised_flag"}},
	{2918, "\U0001f4ed", "open mailbox with lowered flag", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"open_mailbox_with_lowered_flag"}},
	{2919, "\U0001f4ee", "postbox", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"postbox"}},
	{2920, "\U0001f5f3\ufe0f", "ballot box with ballot", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"ballot_box_with_ballot"}},
	{2921, "\u270f\ufe0f", "pencil", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pencil2"}},
	{2922, "\u2712\ufe0f", "black nib", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"black_nib"}},
	{2923, "\U0001f58b\ufe0f", "fountain pen", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"fountain_pen"}},
	{2924, "\U0001f58a\ufe0f", "pen", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"pen"}},
	{2925, "\U0001f58c\ufe0f", "paintbrush", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"paintbrush"}},
	{2926, "\U0001f58d\ufe0f", "crayon", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"crayon"}},
	{2927, "\U0001f4dd", "memo", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"memo", "pencil"}},
	{2928, "\U0001f4bc", "briefcase", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"briefcase"}},
	{2929, "\U0001f4c1", "file folder", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"file_folder"}},
	{2930, "\U0001f4c2", "open file folder", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"open_file_folder"}},
	{2931, "\U0001f5c2\ufe0f", "card index dividers", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"card_index_dividers"}},
	{2932, "\U0001f4c5", "calendar", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"date"}},
	{2933, "\U0001f4c6", "tear-off calendar", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tear_off_calendar"}},
	{2934, "\U0001f5d2\ufe0f", "spiral notepad", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"spiral_notepad"}},
	{2935, "\U0001f5d3\ufe0f", "spiral calendar", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"spiral_calendar"}},
	{2936, "\U0001f4c7", "card index", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"card_index"}},
	{2937, "\U0001f4c8", "chart increasing", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"chart_increasing"}},
	{2938, "\U0001f4c9", "chart decreasing", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"chart_decreasing"}},
	{2939, "\U0001f4ca", "bar chart", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bar_chart"}},
	{2940, "\U0001f4cb", "clipboard", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"clipboard"}},
	{2941, "\U0001f4cc", "pushpin", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pushpin"}},
	{2942, "\U0001f4cd", "round pushpin", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"round_pushpin"}},
	{2943, "\U0001f4ce", "paperclip", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"paperclip"}},
	{2944, "\U0001f587\ufe0f", "linked paperclips", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"linked_paperclips"}},
	{2945, "\U0001f4cf", "straight ruler", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"straight_ruler"}},
	{2946, "\U0001f4d0", "triangular ruler", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"triangular_ruler"}},
	{2947, "\u2702\ufe0f", "scissors", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"scissors"}},
	{2948, "\U0001f5c3\ufe0f", "card file box", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"card_file_box"}},
	{2949, "\U0001f5c4\ufe0f", "file cabinet", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"file_cabinet"}},
	{2950, "\U0001f5d1\ufe0f", "wastebasket", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"wastebasket"}},
	{2951, "\U0001f512", "locked", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"lock"}},
	{2952, "\U0001f513", "unlocked", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"unlocked"}},
	{2953, "\U0001f50f", "locked with pen", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"locked_with_pen"}},
	{2954, "\U0001f510", "locked with key", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"locked_with_key"}},
	{2955, "\U0001f511", "key", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"key"}},
	{2956, "\U0001f5dd\ufe0f", "old key", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"old_key"}},
	{2957, "\U0001f528", "hammer", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hammer"}},
	{2958, "\U0001fa93", "axe", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"axe"}},
	{2959, "\u26cf\ufe0f", "pick", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"pick"}},
	{2960, "\u2692\ufe0f", "hammer and pick", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"hammer_and_pick"}},
	{2961, "\U0001f6e0\ufe0f", "hammer and wrench", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"hammer_and_wrench"}},
	{2962, "\U0001f5e1\ufe0f", "dagger", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"dagger"}},
	{2963, "\u2694\ufe0f", "crossed swords", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"crossed_swords"}},
	{2964, "\U0001f4a3", "bomb", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"bomb"}},
	{2965, "\U0001fa83", "boomerang", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"boomerang"}},
	{2966, "\U0001f3f9", "bow and arrow", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"bow_and_arrow"}},
	{2967, "\U0001f6e1\ufe0f", "shield", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"shield"}},
	{2968, "\U0001fa9a", "carpentry saw", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"carpentry_saw"}},
	{2969, "\U0001f527", "wrench", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"wrench"}},
	{2970, "\U0001fa9b", "screwdriver", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"screwdriver"}},
	{2971, "\U0001f529", "nut and bolt", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"nut_and_bolt"}},
	{2972, "\u2699\ufe0f", "gear", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"gear"}},
	{2973, "\U0001f5dc\ufe0f", "clamp", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"clamp"}},
	{2974, "\u2696\ufe0f", "balance scale", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"balance_scale"}},
	{2975, "\U0001f9af", "white cane", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"white_cane"}},
	{2976, "\U0001f517", "link", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"link"}},
	{2977, "\u26d3\ufe0f\u200d\U0001f4a5", "broken chain", Objects, UnicodeVersion{15, 1}, NoSkinTone, -1, []string{"broken_chain"}},
	{2978, "\u26d3\ufe0f", "chains", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"chains"}},
	{2979, "\U0001fa9d", "hook", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"hook"}},
	{2980, "\U0001f9f0", "toolbox", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"toolbox"}},
	{2981, "\U0001f9f2", "magnet", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"magnet"}},
	{2982, "\U0001fa9c", "ladder", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"ladder"}},
	{2983, "\u2697\ufe0f", "alembic", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"alembic"}},
	{2984, "\U0001f9ea", "test tube", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"test_tube"}},
	{2985, "\U0001f9eb", "petri dish", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"petri_dish"}},
	{2986, "\U0001f9ec", "dna", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"dna"}},
	{2987, "\U0001f52c", "microscope", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"microscope"}},
	{2988, "\U0001f52d", "telescope", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"telescope"}},
	{2989, "\U0001f4e1", "satellite antenna", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"satellite_antenna"}},
	{2990, "\U0001f489", "syringe", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"syringe"}},
	{2991, "\U0001fa78", "drop of blood", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"drop_of_blood"}},
	{2992, "\U0001f48a", "pill", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pill"}},
	{2993, "\U0001fa79", "adhesive bandage", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"adhesive_bandage"}},
	{2994, "\U0001fa7c", "crutch", Objects, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"crutch"}},
	{2995, "\U0001fa7a", "stethoscope", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"stethoscope"}},
	{2996, "\U0001fa7b", "x-ray", Objects, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"x_ray"}},
	{2997, "\U0001f6aa", "door", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"door"}},
	{2998, "\U0001f6d7", "elevator", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"elevator"}},
	{2999, "\U0001fa9e", "mirror", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"mirror"}},
	{3000, "\U0001fa9f", "window", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"window"}},
	{3001, "\U0001f6cf\ufe0f", "bed", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"bed"}},
	{3002, "\U0001f6cb\ufe0f", "couch and lamp", Objects, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"couch_and_lamp"}},
	{3003, "\U0001fa91", "chair", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"chair"}},
	{3004, "\U0001f6bd", "toilet", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"toilet"}},
	{3005, "\U0001faa0", "plunger", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"plunger"}},
	{3006, "\U0001f6bf", "shower", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"shower"}},
	{3007, "\U0001f6c1", "bathtub", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"bathtub"}},
	{3008, "\U0001faa4", "mouse trap", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"mouse_trap"}},
	{3009, "\U0001fa92", "razor", Objects, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"razor"}},
	{3010, "\U0001f9f4", "lotion bottle", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"lotion_bottle"}},
	{3011, "\U0001f9f7", "safety pin", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"safety_pin"}},
	{3012, "\U0001f9f9", "broom", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"broom"}},
	{3013, "\U0001f9fa", "basket", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"basket"}},
	{3014, "\U0001f9fb", "roll of paper", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"roll_of_paper"}},
	{3015, "\U0001faa3", "bucket", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"bucket"}},
	{3016, "\U0001f9fc", "soap", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"soap"}},
	{3017, "\U0001fae7", "bubbles", Objects, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"bubbles"}},
	{3018, "\U0001faa5", "toothbrush", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"toothbrush"}},
	{3019, "\U0001f9fd", "sponge", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"sponge"}},
	{3020, "\U0001f9ef", "fire extinguisher", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"fire_extinguisher"}},
	{3021, "\U0001f6d2", "shopping cart", Objects, UnicodeVersion{3, 0}, NoSkinTone, -1, []string{"shopping_cart"}},
	{3022, "\U0001f6ac", "cigarette", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cigarette"}},
	{3023, "\u26b0\ufe0f", "coffin", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"coffin"}},
	{3024, "\U0001faa6", "headstone", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"headstone"}},
	{3025, "\u26b1\ufe0f", "funeral urn", Objects, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"funeral_urn"}},
	{3026, "\U0001f9ff", "nazar amulet", Objects, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"nazar_amulet"}},
	{3027, "\U0001faac", "hamsa", Objects, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"hamsa"}},
	{3028, "\U0001f5ff", "moai", Objects, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"moai"}},
	{3029, "\U0001faa7", "placard", Objects, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"placard"}},
	{3030, "\U0001faaa", "identification card", Objects, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"identification_card"}},
	{3031, "\U0001f3e7", "ATM sign", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"atm_sign"}},
	{3032, "\U0001f6ae", "litter in bin sign", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"litter_in_bin_sign"}},
	{3033, "\U0001f6b0", "potable water", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"potable_water"}},
	{3034, "\u267f", "wheelchair symbol", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"wheelchair_symbol"}},
	{3035, "\U0001f6b9", "men’s room", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"men_s_room"}},
	{3036, "\U0001f6ba", "women’s room", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"women_s_room"}},
	{3037, "\U0001f6bb", "restroom", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"restroom"}},
	{3038, "\U0001f6bc", "baby symbol", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"baby_symbol"}},
	{3039, "\U0001f6be", "water closet", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"water_closet"}},
	{3040, "\U0001f6c2", "passport control", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"passport_control"}},
	{3041, "\U0001f6c3", "customs", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"customs"}},
	{3042, "\U0001f6c4", "baggage claim", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"baggage_claim"}},
	{3043, "\U0001f6c5", "left luggage", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"left_luggage"}},
	{3044, "\u26a0\ufe0f", "warning", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"warning"}},
	{3045, "\U0001f6b8", "children crossing", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"children_crossing"}},
	{3046, "\u26d4", "no entry", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"no_entry"}},
	{3047, "\U0001f6ab", "prohibited", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"prohibited"}},
	{3048, "\U0001f6b3", "no bicycles", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"no_bicycles"}},
	{3049, "\U0001f6ad", "no smoking", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"no_smoking"}},
	{3050, "\U0001f6af", "no littering", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"no_littering"}},
	{3051, "\U0001f6b1", "non-potable water", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"non_potable_water"}},
	{3052, "\U0001f6b7", "no pedestrians", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"no_pedestrians"}},
	{3053, "\U0001f4f5", "no mobile phones", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"no_mobile_phones"}},
	{3054, "\U0001f51e", "no one under eighteen", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"no_one_under_eighteen"}},
	{3055, "\u2622\ufe0f", "radioactive", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"radioactive"}},
	{3056, "\u2623\ufe0f", "biohazard", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"biohazard"}},
	{3057, "\u2b06\ufe0f", "up arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"up_arrow"}},
	{3058, "\u2197\ufe0f", "up-right arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"up_right_arrow"}},
	{3059, "\u27a1\ufe0f", "right arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"right_arrow"}},
	{3060, "\u2198\ufe0f", "down-right arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"down_right_arrow"}},
	{3061, "\u2b07\ufe0f", "down arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"down_arrow"}},
	{3062, "\u2199\ufe0f", "down-left arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"down_left_arrow"}},
	{3063, "\u2b05\ufe0f", "left arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"left_arrow"}},
	{3064, "\u2196\ufe0f", "up-left arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"up_left_arrow"}},
	{3065, "\u2195\ufe0f", "up-down arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"up_down_arrow"}},
	{3066, "\u2194\ufe0f", "left-right arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"left_right_arrow"}},
	{3067, "\u21a9\ufe0f", "right arrow curving left", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"right_arrow_curving_left"}},
	{3068, "\u21aa\ufe0f", "left arrow curving right", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"left_arrow_curving_right"}},
	{3069, "\u2934\ufe0f", "right arrow curving up", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"right_arrow_curving_up"}},
	{3070, "\u2935\ufe0f", "right arrow curving down", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"right_arrow_curving_down"}},
	{3071, "\U0001f503", "clockwise vertical arrows", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"clockwise_vertical_arrows"}},
	{3072, "\U0001f504", "counterclockwise arrows button", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"counterclockwise_arrows_button"}},
	{3073, "\U0001f519", "BACK arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"back_arrow"}},
	{3074, "\U0001f51a", "END arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"end_arrow"}},
	{3075, "\U0001f51b", "ON! arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"on_arrow"}},
	{3076, "\U0001f51c", "SOON arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"soon_arrow"}},
	{3077, "\U0001f51d", "TOP arrow", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"top_arrow"}},
	{3078, "\U0001f6d0", "place of worship", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"place_of_worship"}},
	{3079, "\u269b\ufe0f", "atom symbol", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"atom_symbol"}},
	{3080, "\U0001f549\ufe0f", "om", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"om"}},
	{3081, "\u2721\ufe0f", "star of David", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"star_of_david"}},
	{3082, "\u2638\ufe0f", "wheel of dharma", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"wheel_of_dharma"}},
	{3083, "\u262f\ufe0f", "yin yang", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"yin_yang"}},
	{3084, "\u271d\ufe0f", "latin cross", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"latin_cross"}},
	{3085, "\u2626\ufe0f", "orthodox cross", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"orthodox_cross"}},
	{3086, "\u262a\ufe0f", "star and crescent", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"star_and_crescent"}},
	{3087, "\u262e\ufe0f", "peace symbol", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"peace_symbol"}},
	{3088, "\U0001f54e", "menorah", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"menorah"}},
	{3089, "\U0001f52f", "dotted six-pointed star", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"dotted_six_pointed_star"}},
	{3090, "\U0001faaf", "khanda", Symbols, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"khanda"}},
	{3091, "\u2648", "Aries", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"aries"}},
	{3092, "\u2649", "Taurus", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"taurus"}},
	{3093, "\u264a", "Gemini", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"gemini"}},
	{3094, "\u264b", "Cancer", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cancer"}},
	{3095, "\u264c", "Leo", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"leo"}},
	{3096, "\u264d", "Virgo", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"virgo"}},
	{3097, "\u264e", "Libra", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"libra"}},
	{3098, "\u264f", "Scorpio", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"scorpio"}},
	{3099, "\u2650", "Sagittarius", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sagittarius"}},
	{3100, "\u2651", "Capricorn", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"capricorn"}},
	{3101, "\u2652", "Aquarius", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"aquarius"}},
	{3102, "\u2653", "Pisces", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"pisces"}},
	{3103, "\u26ce", "Ophiuchus", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ophiuchus"}},
	{3104, "\U0001f500", "shuffle tracks button", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"shuffle_tracks_button"}},
	{3105, "\U0001f501", "repeat button", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"repeat_button"}},
	{3106, "\U0001f502", "repeat single button", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"repeat_single_button"}},
	{3107, "\u25b6\ufe0f", "play button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"play_button"}},
	{3108, "\u23e9", "fast-forward button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fast_forward_button"}},
	{3109, "\u23ed\ufe0f", "next track button", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"next_track_button"}},
	{3110, "\u23ef\ufe0f", "play or pause button", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"play_or_pause_button"}},
	{3111, "\u25c0\ufe0f", "reverse button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"reverse_button"}},
	{3112, "\u23ea", "fast reverse button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fast_reverse_button"}},
	{3113, "\u23ee\ufe0f", "last track button", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"last_track_button"}},
	{3114, "\U0001f53c", "upwards button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"upwards_button"}},
	{3115, "\u23eb", "fast up button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fast_up_button"}},
	{3116, "\U0001f53d", "downwards button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"downwards_button"}},
	{3117, "\u23ec", "fast down button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fast_down_button"}},
	{3118, "\u23f8\ufe0f", "pause button", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"pause_button"}},
	{3119, "\u23f9\ufe0f", "stop button", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"stop_button"}},
	{3120, "\u23fa\ufe0f", "record button", Symbols, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"record_button"}},
	{3121, "\u23cf\ufe0f", "eject button", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"eject_button"}},
	{3122, "\U0001f3a6", "cinema", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cinema"}},
	{3123, "\U0001f505", "dim button", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"dim_button"}},
	{3124, "\U0001f506", "bright button", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"bright_button"}},
	{3125, "\U0001f4f6", "antenna bars", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"antenna_bars"}},
	{3126, "\U0001f6dc", "wireless", Symbols, UnicodeVersion{15, 0}, NoSkinTone, -1, []string{"wireless"}},
	{3127, "\U0001f4f3", "vibration mode", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"vibration_mode"}},
	{3128, "\U0001f4f4", "mobile phone off", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"mobile_phone_off"}},
	{3129, "\u2640\ufe0f", "female sign", Symbols, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"female_sign"}},
	{3130, "\u2642\ufe0f", "male sign", Symbols, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"male_sign"}},
	{3131, "\u26a7\ufe0f", "transgender symbol", Symbols, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"transgender_symbol"}},
	{3132, "\u2716\ufe0f", "multiply", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"multiply"}},
	{3133, "\u2795", "plus", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"plus"}},
	{3134, "\u2796", "minus", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"minus"}},
	{3135, "\u2797", "divide", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"divide"}},
	{3136, "\U0001f7f0", "heavy equals sign", Symbols, UnicodeVersion{14, 0}, NoSkinTone, -1, []string{"heavy_equals_sign"}},
	{3137, "\u267e\ufe0f", "infinity", Symbols, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"infinity"}},
	{3138, "\u203c\ufe0f", "double exclamation mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"double_exclamation_mark"}},
	{3139, "\u2049\ufe0f", "exclamation question mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"exclamation_question_mark"}},
	{3140, "\u2753", "red question mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"question"}},
	{3141, "\u2754", "white question mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_question_mark"}},
	{3142, "\u2755", "white exclamation mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_exclamation_mark"}},
	{3143, "\u2757", "red exclamation mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"exclamation", "heavy_exclamation_mark"}},
	{3144, "\u3030\ufe0f", "wavy dash", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"wavy_dash"}},
	{3145, "\U0001f4b1", "currency exchange", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"currency_exchange"}},
	{3146, "\U0001f4b2", "heavy dollar sign", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"heavy_dollar_sign"}},
	{3147, "\u2695\ufe0f", "medical symbol", Symbols, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"medical_symbol"}},
	{3148, "\u267b\ufe0f", "recycling symbol", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"recycle"}},
	{3149, "\u269c\ufe0f", "fleur-de-lis", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"fleur_de_lis"}},
	{3150, "\U0001f531", "trident emblem", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"trident_emblem"}},
	{3151, "\U0001f4db", "name badge", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"name_badge"}},
	{3152, "\U0001f530", "Japanese symbol for beginner", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_symbol_for_beginner"}},
	{3153, "\u2b55", "hollow red circle", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hollow_red_circle"}},
	{3154, "\u2705", "check mark button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_check_mark"}},
	{3155, "\u2611\ufe0f", "check box with check", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"check_box_with_check"}},
	{3156, "\u2714\ufe0f", "check mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"heavy_check_mark"}},
	{3157, "\u274c", "cross mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"x"}},
	{3158, "\u274e", "cross mark button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cross_mark_button"}},
	{3159, "\u27b0", "curly loop", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"curly_loop"}},
	{3160, "\u27bf", "double curly loop", Symbols, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"double_curly_loop"}},
	{3161, "\u303d\ufe0f", "part alternation mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"part_alternation_mark"}},
	{3162, "\u2733\ufe0f", "eight-spoked asterisk", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"eight_spoked_asterisk"}},
	{3163, "\u2734\ufe0f", "eight-pointed star", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"eight_pointed_star"}},
	{3164, "\u2747\ufe0f", "sparkle", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sparkle"}},
	{3165, "\u00a9\ufe0f", "copyright", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"copyright"}},
	{3166, "\u00ae\ufe0f", "registered", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"registered"}},
	{3167, "\u2122\ufe0f", "trade mark", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"tm"}},
	{3168, "#\ufe0f\u20e3", "keycap: #", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"hash"}},
	{3169, "*\ufe0f\u20e3", "keycap: *", Symbols, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"asterisk"}},
	{3170, "0\ufe0f\u20e3", "keycap: 0", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"zero"}},
	{3171, "1\ufe0f\u20e3", "keycap: 1", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"one"}},
	{3172, "2\ufe0f\u20e3", "keycap: 2", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"two"}},
	{3173, "3\ufe0f\u20e3", "keycap: 3", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"three"}},
	{3174, "4\ufe0f\u20e3", "keycap: 4", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"four"}},
	{3175, "5\ufe0f\u20e3", "keycap: 5", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"five"}},
	{3176, "6\ufe0f\u20e3", "keycap: 6", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"six"}},
	{3177, "7\ufe0f\u20e3", "keycap: 7", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"seven"}},
	{3178, "8\ufe0f\u20e3", "keycap: 8", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"eight"}},
	{3179, "9\ufe0f\u20e3", "keycap: 9", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"nine"}},
	{3180, "\U0001f51f", "keycap: 10", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"keycap_ten"}},
	{3181, "\U0001f520", "input latin uppercase", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"input_latin_uppercase"}},
	{3182, "\U0001f521", "input latin lowercase", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"input_latin_lowercase"}},
	{3183, "\U0001f522", "input numbers", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"input_numbers"}},
	{3184, "\U0001f523", "input symbols", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"input_symbols"}},
	{3185, "\U0001f524", "input latin letters", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"input_latin_letters"}},
	{3186, "\U0001f170\ufe0f", "A button (blood type)", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"a_button_blood_type"}},
	{3187, "\U0001f18e", "AB button (blood type)", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ab_button_blood_type"}},
	{3188, "\U0001f171\ufe0f", "B button (blood type)", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"b_button_blood_type"}},
	{3189, "\U0001f191", "CL button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cl_button"}},
	{3190, "\U0001f192", "COOL button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cool_button"}},
	{3191, "\U0001f193", "FREE button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"free_button"}},
	{3192, "\u2139\ufe0f", "information", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"information"}},
	{3193, "\U0001f194", "ID button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"id_button"}},
	{3194, "\u24c2\ufe0f", "circled M", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"circled_m"}},
	{3195, "\U0001f195", "NEW button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"new_button"}},
	{3196, "\U0001f196", "NG button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ng_button"}},
	{3197, "\U0001f17e\ufe0f", "O button (blood type)", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"o_button_blood_type"}},
	{3198, "\U0001f197", "OK button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ok_button"}},
	{3199, "\U0001f17f\ufe0f", "P button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"p_button"}},
	{3200, "\U0001f198", "SOS button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"sos_button"}},
	{3201, "\U0001f199", "UP! button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"up_button"}},
	{3202, "\U0001f19a", "VS button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"vs_button"}},
	{3203, "\U0001f201", "Japanese “here” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_here_button"}},
	{3204, "\U0001f202\ufe0f", "Japanese “service charge” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_service_charge_button"}},
	{3205, "\U0001f237\ufe0f", "Japanese “monthly amount” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_monthly_amount_button"}},
	{3206, "\U0001f236", "Japanese “not free of charge” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_not_free_of_charge_button"}},
	{3207, "\U0001f22f", "Japanese “reserved” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_reserved_button"}},
	{3208, "\U0001f250", "Japanese “bargain” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_bargain_button"}},
	{3209, "\U0001f239", "Japanese “discount” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_discount_button"}},
	{3210, "\U0001f21a", "Japanese “free of charge” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_free_of_charge_button"}},
	{3211, "\U0001f232", "Japanese “prohibited” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_prohibited_button"}},
	{3212, "\U0001f251", "Japanese “acceptable” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_acceptable_button"}},
	{3213, "\U0001f238", "Japanese “application” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_application_button"}},
	{3214, "\U0001f234", "Japanese “passing grade” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_passing_grade_button"}},
	{3215, "\U0001f233", "Japanese “vacancy” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_vacancy_button"}},
	{3216, "\u3297\ufe0f", "Japanese “congratulations” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_congratulations_button"}},
	{3217, "\u3299\ufe0f", "Japanese “secret” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_secret_button"}},
	{3218, "\U0001f23a", "Japanese “open for business” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_open_for_business_button"}},
	{3219, "\U0001f235", "Japanese “no vacancy” button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"japanese_no_vacancy_button"}},
	{3220, "\U0001f534", "red circle", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"red_circle"}},
	{3221, "\U0001f7e0", "orange circle", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"orange_circle"}},
	{3222, "\U0001f7e1", "yellow circle", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"yellow_circle"}},
	{3223, "\U0001f7e2", "green circle", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"green_circle"}},
	{3224, "\U0001f535", "blue circle", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"blue_circle"}},
	{3225, "\U0001f7e3", "purple circle", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"purple_circle"}},
	{3226, "\U0001f7e4", "brown circle", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"brown_circle"}},
	{3227, "\u26ab", "black circle", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"black_circle"}},
	{3228, "\u26aa", "white circle", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_circle"}},
	{3229, "\U0001f7e5", "red square", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"red_square"}},
	{3230, "\U0001f7e7", "orange square", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"orange_square"}},
	{3231, "\U0001f7e8", "yellow square", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"yellow_square"}},
	{3232, "\U0001f7e9", "green square", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"green_square"}},
	{3233, "\U0001f7e6", "blue square", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"blue_square"}},
	{3234, "\U0001f7ea", "purple square", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"purple_square"}},
	{3235, "\U0001f7eb", "brown square", Symbols, UnicodeVersion{12, 0}, NoSkinTone, -1, []string{"brown_square"}},
	{3236, "\u2b1b", "black large square", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"black_large_square"}},
	{3237, "\u2b1c", "white large square", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_large_square"}},
	{3238, "\u25fc\ufe0f", "black medium square", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"black_medium_square"}},
	{3239, "\u25fb\ufe0f", "white medium square", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_medium_square"}},
	{3240, "\u25fe", "black medium-small square", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"black_medium_small_square"}},
	{3241, "\u25fd", "white medium-small square", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_medium_small_square"}},
	{3242, "\u25aa\ufe0f", "black small square", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"black_small_square"}},
	{3243, "\u25ab\ufe0f", "white small square", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_small_square"}},
	{3244, "\U0001f536", "large orange diamond", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"large_orange_diamond"}},
	{3245, "\U0001f537", "large blue diamond", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"large_blue_diamond"}},
	{3246, "\U0001f538", "small orange diamond", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"small_orange_diamond"}},
	{3247, "\U0001f539", "small blue diamond", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"small_blue_diamond"}},
	{3248, "\U0001f53a", "red triangle pointed up", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"red_triangle_pointed_up"}},
	{3249, "\U0001f53b", "red triangle pointed down", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"red_triangle_pointed_down"}},
	{3250, "\U0001f4a0", "diamond with a dot", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"diamond_with_a_dot"}},
	{3251, "\U0001f518", "radio button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"radio_button"}},
	{3252, "\U0001f533", "white square button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"white_square_button"}},
	{3253, "\U0001f532", "black square button", Symbols, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"black_square_button"}},
	{3254, "\U0001f3c1", "chequered flag", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"checkered_flag"}},
	{3255, "\U0001f6a9", "triangular flag", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"triangular_flag_on_post"}},
	{3256, "\U0001f38c", "crossed flags", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"crossed_flags"}},
	{3257, "\U0001f3f4", "black flag", Flags, UnicodeVersion{1, 0}, NoSkinTone, -1, []string{"black_flag"}},
	{3258, "\U0001f3f3\ufe0f", "white flag", Flags, UnicodeVersion{0, 7}, NoSkinTone, -1, []string{"white_flag"}},
	{3259, "\U0001f3f3\ufe0f\u200d\U0001f308", "rainbow flag", Flags, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"rainbow_flag"}},
	{3260, "\U0001f3f3\ufe0f\u200d\u26a7\ufe0f", "transgender flag", Flags, UnicodeVersion{13, 0}, NoSkinTone, -1, []string{"transgender_flag"}},
	{3261, "\U0001f3f4\u200d\u2620\ufe0f", "pirate flag", Flags, UnicodeVersion{11, 0}, NoSkinTone, -1, []string{"pirate_flag"}},
	{3262, "\U0001f1e6\U0001f1e8", "flag: Ascension Island", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_ascension_island"}},
	{3263, "\U0001f1e6\U0001f1e9", "flag: Andorra", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_andorra"}},
	{3264, "\U0001f1e6\U0001f1ea", "flag: United Arab Emirates", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_united_arab_emirates"}},
	{3265, "\U0001f1e6\U0001f1eb", "flag: Afghanistan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_afghanistan"}},
	{3266, "\U0001f1e6\U0001f1ec", "flag: Antigua & Barbuda", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_antigua_barbuda"}},
	{3267, "\U0001f1e6\U0001f1ee", "flag: Anguilla", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_anguilla"}},
	{3268, "\U0001f1e6\U0001f1f1", "flag: Albania", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_albania"}},
	{3269, "\U0001f1e6\U0001f1f2", "flag: Armenia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_armenia"}},
	{3270, "\U0001f1e6\U0001f1f4", "flag: Angola", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_angola"}},
	{3271, "\U0001f1e6\U0001f1f6", "flag: Antarctica", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_antarctica"}},
	{3272, "\U0001f1e6\U0001f1f7", "flag: Argentina", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_argentina"}},
	{3273, "\U0001f1e6\U0001f1f8", "flag: American Samoa", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_american_samoa"}},
	{3274, "\U0001f1e6\U0001f1f9", "flag: Austria", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_austria"}},
	{3275, "\U0001f1e6\U0001f1fa", "flag: Australia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_australia"}},
	{3276, "\U0001f1e6\U0001f1fc", "flag: Aruba", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_aruba"}},
	{3277, "\U0001f1e6\U0001f1fd", "flag: Åland Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_aland_islands"}},
	{3278, "\U0001f1e6\U0001f1ff", "flag: Azerbaijan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_azerbaijan"}},
	{3279, "\U0001f1e7\U0001f1e6", "flag: Bosnia & Herzegovina", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bosnia_herzegovina"}},
	{3280, "\U0001f1e7\U0001f1e7", "flag: Barbados", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_barbados"}},
	{3281, "\U0001f1e7\U0001f1e9", "flag: Bangladesh", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bangladesh"}},
	{3282, "\U0001f1e7\U0001f1ea", "flag: Belgium", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_belgium"}},
	{3283, "\U0001f1e7\U0001f1eb", "flag: Burkina Faso", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_burkina_faso"}},
	{3284, "\U0001f1e7\U0001f1ec", "flag: Bulgaria", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bulgaria"}},
	{3285, "\U0001f1e7\U0001f1ed", "flag: Bahrain", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bahrain"}},
	{3286, "\U0001f1e7\U0001f1ee", "flag: Burundi", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_burundi"}},
	{3287, "\U0001f1e7\U0001f1ef", "flag: Benin", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_benin"}},
	{3288, "\U0001f1e7\U0001f1f1", "flag: St. Barthélemy", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_st_barthelemy"}},
	{3289, "\U0001f1e7\U0001f1f2", "flag: Bermuda", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bermuda"}},
	{3290, "\U0001f1e7\U0001f1f3", "flag: Brunei", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_brunei"}},
	{3291, "\U0001f1e7\U0001f1f4", "flag: Bolivia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bolivia"}},
	{3292, "\U0001f1e7\U0001f1f6", "flag: Caribbean Netherlands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_caribbean_netherlands"}},
	{3293, "\U0001f1e7\U0001f1f7", "flag: Brazil", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_brazil"}},
	{3294, "\U0001f1e7\U0001f1f8", "flag: Bahamas", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bahamas"}},
	{3295, "\U0001f1e7\U0001f1f9", "flag: Bhutan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bhutan"}},
	{3296, "\U0001f1e7\U0001f1fb", "flag: Bouvet Island", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_bouvet_island"}},
	{3297, "\U0001f1e7\U0001f1fc", "flag: Botswana", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_botswana"}},
	{3298, "\U0001f1e7\U0001f1fe", "flag: Belarus", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_belarus"}},
	{3299, "\U0001f1e7\U0001f1ff", "flag: Belize", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_belize"}},
	{3300, "\U0001f1e8\U0001f1e6", "flag: Canada", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_canada"}},
	{3301, "\U0001f1e8\U0001f1e8", "flag: Cocos (Keeling) Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cocos_keeling_islands"}},
	{3302, "\U0001f1e8\U0001f1e9", "flag: Congo - Kinshasa", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_congo_kinshasa"}},
	{3303, "\U0001f1e8\U0001f1eb", "flag: Central African Republic", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_central_african_republic"}},
	{3304, "\U0001f1e8\U0001f1ec", "flag: Congo - Brazzaville", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_congo_brazzaville"}},
	{3305, "\U0001f1e8\U0001f1ed", "flag: Switzerland", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_switzerland"}},
	{3306, "\U0001f1e8\U0001f1ee", "flag: Côte d’Ivoire", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cote_d_ivoire"}},
	{3307, "\U0001f1e8\U0001f1f0", "flag: Cook Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cook_islands"}},
	{3308, "\U0001f1e8\U0001f1f1", "flag: Chile", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_chile"}},
	{3309, "\U0001f1e8\U0001f1f2", "flag: Cameroon", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cameroon"}},
	{3310, "\U0001f1e8\U0001f1f3", "flag: China", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"cn"}},
	{3311, "\U0001f1e8\U0001f1f4", "flag: Colombia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_colombia"}},
	{3312, "\U0001f1e8\U0001f1f5", "flag: Clipperton Island", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_clipperton_island"}},
	{3313, "\U0001f1e8\U0001f1f7", "flag: Costa Rica", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_costa_rica"}},
	{3314, "\U0001f1e8\U0001f1fa", "flag: Cuba", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cuba"}},
	{3315, "\U0001f1e8\U0001f1fb", "flag: Cape Verde", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cape_verde"}},
	{3316, "\U0001f1e8\U0001f1fc", "flag: Curaçao", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_curacao"}},
	{3317, "\U0001f1e8\U0001f1fd", "flag: Christmas Island", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_christmas_island"}},
	{3318, "\U0001f1e8\U0001f1fe", "flag: Cyprus", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cyprus"}},
	{3319, "\U0001f1e8\U0001f1ff", "flag: Czechia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_czechia"}},
	{3320, "\U0001f1e9\U0001f1ea", "flag: Germany", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"de"}},
	{3321, "\U0001f1e9\U0001f1ec", "flag: Diego Garcia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_diego_garcia"}},
	{3322, "\U0001f1e9\U0001f1ef", "flag: Djibouti", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_djibouti"}},
	{3323, "\U0001f1e9\U0001f1f0", "flag: Denmark", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_denmark"}},
	{3324, "\U0001f1e9\U0001f1f2", "flag: Dominica", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_dominica"}},
	{3325, "\U0001f1e9\U0001f1f4", "flag: Dominican Republic", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_dominican_republic"}},
	{3326, "\U0001f1e9\U0001f1ff", "flag: Algeria", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_algeria"}},
	{3327, "\U0001f1ea\U0001f1e6", "flag: Ceuta & Melilla", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_ceuta_melilla"}},
	{3328, "\U0001f1ea\U0001f1e8", "flag: Ecuador", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_ecuador"}},
	{3329, "\U0001f1ea\U0001f1ea", "flag: Estonia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_estonia"}},
	{3330, "\U0001f1ea\U0001f1ec", "flag: Egypt", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_egypt"}},
	{3331, "\U0001f1ea\U0001f1ed", "flag: Western Sahara", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_western_sahara"}},
	{3332, "\U0001f1ea\U0001f1f7", "flag: Eritrea", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_eritrea"}},
	{3333, "\U0001f1ea\U0001f1f8", "flag: Spain", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"es"}},
	{3334, "\U0001f1ea\U0001f1f9", "flag: Ethiopia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_ethiopia"}},
	{3335, "\U0001f1ea\U0001f1fa", "flag: European Union", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_european_union"}},
	{3336, "\U0001f1eb\U0001f1ee", "flag: Finland", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_finland"}},
	{3337, "\U0001f1eb\U0001f1ef", "flag: Fiji", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_fiji"}},
	{3338, "\U0001f1eb\U0001f1f0", "flag: Falkland Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_falkland_islands"}},
	{3339, "\U0001f1eb\U0001f1f2", "flag: Micronesia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_micronesia"}},
	{3340, "\U0001f1eb\U0001f1f4", "flag: Faroe Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_faroe_islands"}},
	{3341, "\U0001f1eb\U0001f1f7", "flag: France", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"fr"}},
	{3342, "\U0001f1ec\U0001f1e6", "flag: Gabon", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_gabon"}},
	{3343, "\U0001f1ec\U0001f1e7", "flag: United Kingdom", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"uk", "gb"}},
	{3344, "\U0001f1ec\U0001f1e9", "flag: Grenada", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_grenada"}},
	{3345, "\U0001f1ec\U0001f1ea", "flag: Georgia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_georgia"}},
	{3346, "\U0001f1ec\U0001f1eb", "flag: French Guiana", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_french_guiana"}},
	{3347, "\U0001f1ec\U0001f1ec", "flag: Guernsey", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_guernsey"}},
	{3348, "\U0001f1ec\U0001f1ed", "flag: Ghana", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_ghana"}},
	{3349, "\U0001f1ec\U0001f1ee", "flag: Gibraltar", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_gibraltar"}},
	{3350, "\U0001f1ec\U0001f1f1", "flag: Greenland", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_greenland"}},
	{3351, "\U0001f1ec\U0001f1f2", "flag: Gambia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_gambia"}},
	{3352, "\U0001f1ec\U0001f1f3", "flag: Guinea", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_guinea"}},
	{3353, "\U0001f1ec\U0001f1f5", "flag: Guadeloupe", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_guadeloupe"}},
	{3354, "\U0001f1ec\U0001f1f6", "flag: Equatorial Guinea", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_equatorial_guinea"}},
	{3355, "\U0001f1ec\U0001f1f7", "flag: Greece", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_greece"}},
	{3356, "\U0001f1ec\U0001f1f8", "flag: South Georgia & South Sandwich Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_south_georgia_south_sandwich_islands"}},
	{3357, "\U0001f1ec\U0001f1f9", "flag: Guatemala", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_guatemala"}},
	{3358, "\U0001f1ec\U0001f1fa", "flag: Guam", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_guam"}},
	{3359, "\U0001f1ec\U0001f1fc", "flag: Guinea-Bissau", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_guinea_bissau"}},
	{3360, "\U0001f1ec\U0001f1fe", "flag: Guyana", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_guyana"}},
	{3361, "\U0001f1ed\U0001f1f0", "flag: Hong Kong SAR China", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_hong_kong_sar_china"}},
	{3362, "\U0001f1ed\U0001f1f2", "flag: Heard & McDonald Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_heard_mcdonald_islands"}},
	{3363, "\U0001f1ed\U0001f1f3", "flag: Honduras", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_honduras"}},
	{3364, "\U0001f1ed\U0001f1f7", "flag: Croatia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_croatia"}},
	{3365, "\U0001f1ed\U0001f1f9", "flag: Haiti", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_haiti"}},
	{3366, "\U0001f1ed\U0001f1fa", "flag: Hungary", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_hungary"}},
	{3367, "\U0001f1ee\U0001f1e8", "flag: Canary Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_canary_islands"}},
	{3368, "\U0001f1ee\U0001f1e9", "flag: Indonesia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_indonesia"}},
	{3369, "\U0001f1ee\U0001f1ea", "flag: Ireland", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_ireland"}},
	{3370, "\U0001f1ee\U0001f1f1", "flag: Israel", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_israel"}},
	{3371, "\U0001f1ee\U0001f1f2", "flag: Isle of Man", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_isle_of_man"}},
	{3372, "\U0001f1ee\U0001f1f3", "flag: India", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_india"}},
	{3373, "\U0001f1ee\U0001f1f4", "flag: British Indian Ocean Territory", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_british_indian_ocean_territory"}},
	{3374, "\U0001f1ee\U0001f1f6", "flag: Iraq", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_iraq"}},
	{3375, "\U0001f1ee\U0001f1f7", "flag: Iran", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_iran"}},
	{3376, "\U0001f1ee\U0001f1f8", "flag: Iceland", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_iceland"}},
	{3377, "\U0001f1ee\U0001f1f9", "flag: Italy", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"it"}},
	{3378, "\U0001f1ef\U0001f1ea", "flag: Jersey", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_jersey"}},
	{3379, "\U0001f1ef\U0001f1f2", "flag: Jamaica", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_jamaica"}},
	{3380, "\U0001f1ef\U0001f1f4", "flag: Jordan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_jordan"}},
	{3381, "\U0001f1ef\U0001f1f5", "flag: Japan", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"jp"}},
	{3382, "\U0001f1f0\U0001f1ea", "flag: Kenya", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_kenya"}},
	{3383, "\U0001f1f0\U0001f1ec", "flag: Kyrgyzstan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_kyrgyzstan"}},
	{3384, "\U0001f1f0\U0001f1ed", "flag: Cambodia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cambodia"}},
	{3385, "\U0001f1f0\U0001f1ee", "flag: Kiribati", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_kiribati"}},
	{3386, "\U0001f1f0\U0001f1f2", "flag: Comoros", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_comoros"}},
	{3387, "\U0001f1f0\U0001f1f3", "flag: St. Kitts & Nevis", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_st_kitts_nevis"}},
	{3388, "\U0001f1f0\U0001f1f5", "flag: North Korea", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_north_korea"}},
	{3389, "\U0001f1f0\U0001f1f7", "flag: South Korea", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"kr"}},
	{3390, "\U0001f1f0\U0001f1fc", "flag: Kuwait", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_kuwait"}},
	{3391, "\U0001f1f0\U0001f1fe", "flag: Cayman Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_cayman_islands"}},
	{3392, "\U0001f1f0\U0001f1ff", "flag: Kazakhstan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_kazakhstan"}},
	{3393, "\U0001f1f1\U0001f1e6", "flag: Laos", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_laos"}},
	{3394, "\U0001f1f1\U0001f1e7", "flag: Lebanon", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_lebanon"}},
	{3395, "\U0001f1f1\U0001f1e8", "flag: St. Lucia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_st_lucia"}},
	{3396, "\U0001f1f1\U0001f1ee", "flag: Liechtenstein", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_liechtenstein"}},
	{3397, "\U0001f1f1\U0001f1f0", "flag: Sri Lanka", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_sri_lanka"}},
	{3398, "\U0001f1f1\U0001f1f7", "flag: Liberia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_liberia"}},
	{3399, "\U0001f1f1\U0001f1f8", "flag: Lesotho", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_lesotho"}},
	{3400, "\U0001f1f1\U0001f1f9", "flag: Lithuania", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_lithuania"}},
	{3401, "\U0001f1f1\U0001f1fa", "flag: Luxembourg", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_luxembourg"}},
	{3402, "\U0001f1f1\U0001f1fb", "flag: Latvia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_latvia"}},
	{3403, "\U0001f1f1\U0001f1fe", "flag: Libya", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_libya"}},
	{3404, "\U0001f1f2\U0001f1e6", "flag: Morocco", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_morocco"}},
	{3405, "\U0001f1f2\U0001f1e8", "flag: Monaco", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_monaco"}},
	{3406, "\U0001f1f2\U0001f1e9", "flag: Moldova", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_moldova"}},
	{3407, "\U0001f1f2\U0001f1ea", "flag: Montenegro", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_montenegro"}},
	{3408, "\U0001f1f2\U0001f1eb", "flag: St. Martin", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_st_martin"}},
	{3409, "\U0001f1f2\U0001f1ec", "flag: Madagascar", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_madagascar"}},
	{3410, "\U0001f1f2\U0001f1ed", "flag: Marshall Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_marshall_islands"}},
	{3411, "\U0001f1f2\U0001f1f0", "flag: North Macedonia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_north_macedonia"}},
	{3412, "\U0001f1f2\U0001f1f1", "flag: Mali", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_mali"}},
	{3413, "\U0001f1f2\U0001f1f2", "flag: Myanmar (Burma)", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_myanmar_burma"}},
	{3414, "\U0001f1f2\U0001f1f3", "flag: Mongolia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_mongolia"}},
	{3415, "\U0001f1f2\U0001f1f4", "flag: Macao SAR China", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_macao_sar_china"}},
	{3416, "\U0001f1f2\U0001f1f5", "flag: Northern Mariana Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_northern_mariana_islands"}},
	{3417, "\U0001f1f2\U0001f1f6", "flag: Martinique", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_martinique"}},
	{3418, "\U0001f1f2\U0001f1f7", "flag: Mauritania", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_mauritania"}},
	{3419, "\U0001f1f2\U0001f1f8", "flag: Montserrat", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_montserrat"}},
	{3420, "\U0001f1f2\U0001f1f9", "flag: Malta", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_malta"}},
	{3421, "\U0001f1f2\U0001f1fa", "flag: Mauritius", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_mauritius"}},
	{3422, "\U0001f1f2\U0001f1fb", "flag: Maldives", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_maldives"}},
	{3423, "\U0001f1f2\U0001f1fc", "flag: Malawi", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_malawi"}},
	{3424, "\U0001f1f2\U0001f1fd", "flag: Mexico", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_mexico"}},
	{3425, "\U0001f1f2\U0001f1fe", "flag: Malaysia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_malaysia"}},
	{3426, "\U0001f1f2\U0001f1ff", "flag: Mozambique", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_mozambique"}},
	{3427, "\U0001f1f3\U0001f1e6", "flag: Namibia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_namibia"}},
	{3428, "\U0001f1f3\U0001f1e8", "flag: New Caledonia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_new_caledonia"}},
	{3429, "\U0001f1f3\U0001f1ea", "flag: Niger", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_niger"}},
	{3430, "\U0001f1f3\U0001f1eb", "flag: Norfolk Island", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_norfolk_island"}},
	{3431, "\U0001f1f3\U0001f1ec", "flag: Nigeria", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_nigeria"}},
	{3432, "\U0001f1f3\U0001f1ee", "flag: Nicaragua", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_nicaragua"}},
	{3433, "\U0001f1f3\U0001f1f1", "flag: Netherlands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_netherlands"}},
	{3434, "\U0001f1f3\U0001f1f4", "flag: Norway", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_norway"}},
	{3435, "\U0001f1f3\U0001f1f5", "flag: Nepal", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_nepal"}},
	{3436, "\U0001f1f3\U0001f1f7", "flag: Nauru", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_nauru"}},
	{3437, "\U0001f1f3\U0001f1fa", "flag: Niue", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_niue"}},
	{3438, "\U0001f1f3\U0001f1ff", "flag: New Zealand", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_new_zealand"}},
	{3439, "\U0001f1f4\U0001f1f2", "flag: Oman", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_oman"}},
	{3440, "\U0001f1f5\U0001f1e6", "flag: Panama", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_panama"}},
	{3441, "\U0001f1f5\U0001f1ea", "flag: Peru", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_peru"}},
	{3442, "\U0001f1f5\U0001f1eb", "flag: French Polynesia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_french_polynesia"}},
	{3443, "\U0001f1f5\U0001f1ec", "flag: Papua New Guinea", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_papua_new_guinea"}},
	{3444, "\U0001f1f5\U0001f1ed", "flag: Philippines", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_philippines"}},
	{3445, "\U0001f1f5\U0001f1f0", "flag: Pakistan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_pakistan"}},
	{3446, "\U0001f1f5\U0001f1f1", "flag: Poland", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_poland"}},
	{3447, "\U0001f1f5\U0001f1f2", "flag: St. Pierre & Miquelon", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_st_pierre_miquelon"}},
	{3448, "\U0001f1f5\U0001f1f3", "flag: Pitcairn Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_pitcairn_islands"}},
	{3449, "\U0001f1f5\U0001f1f7", "flag: Puerto Rico", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_puerto_rico"}},
	{3450, "\U0001f1f5\U0001f1f8", "flag: Palestinian Territories", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_palestinian_territories"}},
	{3451, "\U0001f1f5\U0001f1f9", "flag: Portugal", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_portugal"}},
	{3452, "\U0001f1f5\U0001f1fc", "flag: Palau", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_palau"}},
	{3453, "\U0001f1f5\U0001f1fe", "flag: Paraguay", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_paraguay"}},
	{3454, "\U0001f1f6\U0001f1e6", "flag: Qatar", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_qatar"}},
	{3455, "\U0001f1f7\U0001f1ea", "flag: Réunion", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_reunion"}},
	{3456, "\U0001f1f7\U0001f1f4", "flag: Romania", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_romania"}},
	{3457, "\U0001f1f7\U0001f1f8", "flag: Serbia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_serbia"}},
	{3458, "\U0001f1f7\U0001f1fa", "flag: Russia", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"ru"}},
	{3459, "\U0001f1f7\U0001f1fc", "flag: Rwanda", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_rwanda"}},
	{3460, "\U0001f1f8\U0001f1e6", "flag: Saudi Arabia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_saudi_arabia"}},
	{3461, "\U0001f1f8\U0001f1e7", "flag: Solomon Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_solomon_islands"}},
	{3462, "\U0001f1f8\U0001f1e8", "flag: Seychelles", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_seychelles"}},
	{3463, "\U0001f1f8\U0001f1e9", "flag: Sudan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_sudan"}},
	{3464, "\U0001f1f8\U0001f1ea", "flag: Sweden", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_sweden"}},
	{3465, "\U0001f1f8\U0001f1ec", "flag: Singapore", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_singapore"}},
	{3466, "\U0001f1f8\U0001f1ed", "flag: St. Helena", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_st_helena"}},
	{3467, "\U0001f1f8\U0001f1ee", "flag: Slovenia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_slovenia"}},
	{3468, "\U0001f1f8\U0001f1ef", "flag: Svalbard & Jan Mayen", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_svalbard_jan_mayen"}},
	{3469, "\U0001f1f8\U0001f1f0", "flag: Slovakia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_slovakia"}},
	{3470, "\U0001f1f8\U0001f1f1", "flag: Sierra Leone", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_sierra_leone"}},
	{3471, "\U0001f1f8\U0001f1f2", "flag: San Marino", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_san_marino"}},
	{3472, "\U0001f1f8\U0001f1f3", "flag: Senegal", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_senegal"}},
	{3473, "\U0001f1f8\U0001f1f4", "flag: Somalia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_somalia"}},
	{3474, "\U0001f1f8\U0001f1f7", "flag: Suriname", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_suriname"}},
	{3475, "\U0001f1f8\U0001f1f8", "flag: South Sudan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_south_sudan"}},
	{3476, "\U0001f1f8\U0001f1f9", "flag: São Tomé & Príncipe", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_sao_tome_principe"}},
	{3477, "\U0001f1f8\U0001f1fb", "flag: El Salvador", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_el_salvador"}},
	{3478, "\U0001f1f8\U0001f1fd", "flag: Sint Maarten", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_sint_maarten"}},
	{3479, "\U0001f1f8\U0001f1fe", "flag: Syria", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_syria"}},
	{3480, "\U0001f1f8\U0001f1ff", "flag: Eswatini", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_eswatini"}},
	{3481, "\U0001f1f9\U0001f1e6", "flag: Tristan da Cunha", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_tristan_da_cunha"}},
	{3482, "\U0001f1f9\U0001f1e8", "flag: Turks & Caicos Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_turks_caicos_islands"}},
	{3483, "\U0001f1f9\U0001f1e9", "flag: Chad", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_chad"}},
	{3484, "\U0001f1f9\U0001f1eb", "flag: French Southern Territories", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_french_southern_territories"}},
	{3485, "\U0001f1f9\U0001f1ec", "flag: Togo", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_togo"}},
	{3486, "\U0001f1f9\U0001f1ed", "flag: Thailand", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_thailand"}},
	{3487, "\U0001f1f9\U0001f1ef", "flag: Tajikistan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_tajikistan"}},
	{3488, "\U0001f1f9\U0001f1f0", "flag: Tokelau", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_tokelau"}},
	{3489, "\U0001f1f9\U0001f1f1", "flag: Timor-Leste", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_timor_leste"}},
	{3490, "\U0001f1f9\U0001f1f2", "flag: Turkmenistan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_turkmenistan"}},
	{3491, "\U0001f1f9\U0001f1f3", "flag: Tunisia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_tunisia"}},
	{3492, "\U0001f1f9\U0001f1f4", "flag: Tonga", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_tonga"}},
	{3493, "\U0001f1f9\U0001f1f7", "flag: Türkiye", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_turkiye"}},
	{3494, "\U0001f1f9\U0001f1f9", "flag: Trinidad & Tobago", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_trinidad_tobago"}},
	{3495, "\U0001f1f9\U0001f1fb", "flag: Tuvalu", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_tuvalu"}},
	{3496, "\U0001f1f9\U0001f1fc", "flag: Taiwan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_taiwan"}},
	{3497, "\U0001f1f9\U0001f1ff", "flag: Tanzania", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_tanzania"}},
	{3498, "\U0001f1fa\U0001f1e6", "flag: Ukraine", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_ukraine"}},
	{3499, "\U0001f1fa\U0001f1ec", "flag: Uganda", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_uganda"}},
	{3500, "\U0001f1fa\U0001f1f2", "flag: U.S. Outlying Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_u_s_outlying_islands"}},
	{3501, "\U0001f1fa\U0001f1f3", "flag: United Nations", Flags, UnicodeVersion{4, 0}, NoSkinTone, -1, []string{"flag_united_nations"}},
	{3502, "\U0001f1fa\U0001f1f8", "flag: United States", Flags, UnicodeVersion{0, 6}, NoSkinTone, -1, []string{"us"}},
	{3503, "\U0001f1fa\U0001f1fe", "flag: Uruguay", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_uruguay"}},
	{3504, "\U0001f1fa\U0001f1ff", "flag: Uzbekistan", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_uzbekistan"}},
	{3505, "\U0001f1fb\U0001f1e6", "flag: Vatican City", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_vatican_city"}},
	{3506, "\U0001f1fb\U0001f1e8", "flag: St. Vincent & Grenadines", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_st_vincent_grenadines"}},
	{3507, "\U0001f1fb\U0001f1ea", "flag: Venezuela", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_venezuela"}},
	{3508, "\U0001f1fb\U0001f1ec", "flag: British Virgin Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_british_virgin_islands"}},
	{3509, "\U0001f1fb\U0001f1ee", "flag: U.S. Virgin Islands", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_u_s_virgin_islands"}},
	{3510, "\U0001f1fb\U0001f1f3", "flag: Vietnam", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_vietnam"}},
	{3511, "\U0001f1fb\U0001f1fa", "flag: Vanuatu", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_vanuatu"}},
	{3512, "\U0001f1fc\U0001f1eb", "flag: Wallis & Futuna", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_wallis_futuna"}},
	{3513, "\U0001f1fc\U0001f1f8", "flag: Samoa", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_samoa"}},
	{3514, "\U0001f1fd\U0001f1f0", "flag: Kosovo", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_kosovo"}},
	{3515, "\U0001f1fe\U0001f1ea", "flag: Yemen", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_yemen"}},
	{3516, "\U0001f1fe\U0001f1f9", "flag: Mayotte", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_mayotte"}},
	{3517, "\U0001f1ff\U0001f1e6", "flag: South Africa", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_south_africa"}},
	{3518, "\U0001f1ff\U0001f1f2", "flag: Zambia", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_zambia"}},
	{3519, "\U0001f1ff\U0001f1fc", "flag: Zimbabwe", Flags, UnicodeVersion{2, 0}, NoSkinTone, -1, []string{"flag_zimbabwe"}},
	{3520, "\U0001f3f4\U000e0067\U000e0062\U000e0065\U000e006e\U000e0067\U000e007f", "flag: England", Flags, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"flag_england"}},
	{3521, "\U0001f3f4\U000e0067\U000e0062\U000e0073\U000e0063\U000e0074\U000e007f", "flag: Scotland", Flags, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"flag_scotland"}},
	{3522, "\U0001f3f4\U000e0067\U000e0062\U000e0077\U000e006c\U000e0073\U000e007f", "flag: Wales", Flags, UnicodeVersion{5, 0}, NoSkinTone, -1, []string{"flag_wales"}},
}
