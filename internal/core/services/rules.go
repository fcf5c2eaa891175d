package services

import "github.com/custodia-labs/yomu-cli/internal/core/domain"

// Grammar class sets used by the rule table.
var (
	anyClass = []domain.GrammarClass(nil)
	v1       = []domain.GrammarClass{domain.GrammarIchidan}
	v5       = []domain.GrammarClass{domain.GrammarGodan}
	vs       = []domain.GrammarClass{domain.GrammarSuru}
	vk       = []domain.GrammarClass{domain.GrammarKuru}
	adjI     = []domain.GrammarClass{domain.GrammarIAdjective}
	v1v5     = []domain.GrammarClass{domain.GrammarIchidan, domain.GrammarGodan}
	vkV1     = []domain.GrammarClass{domain.GrammarKuru, domain.GrammarIchidan}
)

// ruleRow is one line of the rule table.
type ruleRow struct {
	inflected string
	base      string
	in        []domain.GrammarClass
	out       []domain.GrammarClass
	reason    string
}

// ruleRows is the deinflection table. Suffixes are kana; a row applies
// whenever its inflected suffix ends the current term. Rows shared by
// ichidan and godan る-verbs carry both output classes.
var ruleRows = []ruleRow{
	// Kuru verb. Kanji forms shared with 出来る also carry the ichidan class.
	{"こない", "くる", adjI, vk, "negative"},
	{"来ない", "来る", adjI, vkV1, "negative"},
	{"きた", "くる", anyClass, vk, "past"},
	{"来た", "来る", anyClass, vkV1, "past"},
	{"きて", "くる", anyClass, vk, "te"},
	{"来て", "来る", anyClass, vkV1, "te"},
	{"きたら", "くる", anyClass, vk, "conditional"},
	{"来たら", "来る", anyClass, vkV1, "conditional"},
	{"きたり", "くる", anyClass, vk, "-tari"},
	{"来たり", "来る", anyClass, vkV1, "-tari"},
	{"きます", "くる", anyClass, vk, "polite"},
	{"来ます", "来る", anyClass, vkV1, "polite"},
	{"きました", "くる", anyClass, vk, "polite past"},
	{"来ました", "来る", anyClass, vkV1, "polite past"},
	{"きません", "くる", anyClass, vk, "polite negative"},
	{"来ません", "来る", anyClass, vkV1, "polite negative"},
	{"きましょう", "くる", anyClass, vk, "polite volitional"},
	{"来ましょう", "来る", anyClass, vkV1, "polite volitional"},
	{"こよう", "くる", anyClass, vk, "volitional"},
	{"来よう", "来る", anyClass, vkV1, "volitional"},
	{"こい", "くる", anyClass, vk, "imperative"},
	{"来い", "来る", anyClass, vk, "imperative"},
	{"きたい", "くる", adjI, vk, "-tai"},
	{"来たい", "来る", adjI, vkV1, "-tai"},
	{"くれば", "くる", anyClass, vk, "provisional"},
	{"来れば", "来る", anyClass, vkV1, "provisional"},
	{"こられる", "くる", v1, vk, "potential or passive"},
	{"来られる", "来る", v1, vkV1, "potential or passive"},
	{"これる", "くる", v1, vk, "potential"},
	{"来れる", "来る", v1, vk, "potential"},
	{"こさせる", "くる", v1, vk, "causative"},
	{"来させる", "来る", v1, vkV1, "causative"},
	{"こず", "くる", anyClass, vk, "-zu"},
	{"来ず", "来る", anyClass, vkV1, "-zu"},

	// Ichidan verbs
	{"ない", "る", adjI, v1, "negative"},
	{"ないで", "る", anyClass, v1, "negative te"},
	{"ず", "る", anyClass, v1, "-zu"},
	{"ぬ", "る", anyClass, v1, "-nu"},
	{"た", "る", anyClass, v1, "past"},
	{"て", "る", anyClass, v1, "te"},
	{"たら", "る", anyClass, v1, "conditional"},
	{"たり", "る", anyClass, v1, "-tari"},
	{"ます", "る", anyClass, v1, "polite"},
	{"ました", "る", anyClass, v1, "polite past"},
	{"ません", "る", anyClass, v1, "polite negative"},
	{"ませんでした", "る", anyClass, v1, "polite past negative"},
	{"ましょう", "る", anyClass, v1, "polite volitional"},
	{"よう", "る", anyClass, v1, "volitional"},
	{"ろ", "る", anyClass, v1, "imperative"},
	{"よ", "る", anyClass, v1, "imperative"},
	{"なさい", "る", anyClass, v1, "polite imperative"},
	{"たい", "る", adjI, v1, "-tai"},
	{"れば", "る", anyClass, v1v5, "provisional"},
	{"ながら", "る", anyClass, v1, "-nagara"},
	{"そう", "る", anyClass, v1, "-sou"},
	{"すぎる", "る", v1, v1, "-sugiru"},
	{"られる", "る", v1, v1v5, "potential or passive"},
	{"れる", "る", v1, v1v5, "potential"},
	{"させる", "る", v1, v1, "causative"},
	{"させられる", "る", v1, v1, "causative passive"},
	{"るな", "る", anyClass, v1v5, "imperative negative"},

	// Godan verbs
	{"わない", "う", adjI, v5, "negative"},
	{"かない", "く", adjI, v5, "negative"},
	{"がない", "ぐ", adjI, v5, "negative"},
	{"さない", "す", adjI, v5, "negative"},
	{"たない", "つ", adjI, v5, "negative"},
	{"なない", "ぬ", adjI, v5, "negative"},
	{"ばない", "ぶ", adjI, v5, "negative"},
	{"まない", "む", adjI, v5, "negative"},
	{"らない", "る", adjI, v5, "negative"},
	{"わないで", "う", anyClass, v5, "negative te"},
	{"かないで", "く", anyClass, v5, "negative te"},
	{"がないで", "ぐ", anyClass, v5, "negative te"},
	{"さないで", "す", anyClass, v5, "negative te"},
	{"たないで", "つ", anyClass, v5, "negative te"},
	{"なないで", "ぬ", anyClass, v5, "negative te"},
	{"ばないで", "ぶ", anyClass, v5, "negative te"},
	{"まないで", "む", anyClass, v5, "negative te"},
	{"らないで", "る", anyClass, v5, "negative te"},
	{"わず", "う", anyClass, v5, "-zu"},
	{"かず", "く", anyClass, v5, "-zu"},
	{"がず", "ぐ", anyClass, v5, "-zu"},
	{"さず", "す", anyClass, v5, "-zu"},
	{"たず", "つ", anyClass, v5, "-zu"},
	{"なず", "ぬ", anyClass, v5, "-zu"},
	{"ばず", "ぶ", anyClass, v5, "-zu"},
	{"まず", "む", anyClass, v5, "-zu"},
	{"らず", "る", anyClass, v5, "-zu"},
	{"います", "う", anyClass, v5, "polite"},
	{"きます", "く", anyClass, v5, "polite"},
	{"ぎます", "ぐ", anyClass, v5, "polite"},
	{"します", "す", anyClass, v5, "polite"},
	{"ちます", "つ", anyClass, v5, "polite"},
	{"にます", "ぬ", anyClass, v5, "polite"},
	{"びます", "ぶ", anyClass, v5, "polite"},
	{"みます", "む", anyClass, v5, "polite"},
	{"ります", "る", anyClass, v5, "polite"},
	{"いました", "う", anyClass, v5, "polite past"},
	{"きました", "く", anyClass, v5, "polite past"},
	{"ぎました", "ぐ", anyClass, v5, "polite past"},
	{"しました", "す", anyClass, v5, "polite past"},
	{"ちました", "つ", anyClass, v5, "polite past"},
	{"にました", "ぬ", anyClass, v5, "polite past"},
	{"びました", "ぶ", anyClass, v5, "polite past"},
	{"みました", "む", anyClass, v5, "polite past"},
	{"りました", "る", anyClass, v5, "polite past"},
	{"いません", "う", anyClass, v5, "polite negative"},
	{"きません", "く", anyClass, v5, "polite negative"},
	{"ぎません", "ぐ", anyClass, v5, "polite negative"},
	{"しません", "す", anyClass, v5, "polite negative"},
	{"ちません", "つ", anyClass, v5, "polite negative"},
	{"にません", "ぬ", anyClass, v5, "polite negative"},
	{"びません", "ぶ", anyClass, v5, "polite negative"},
	{"みません", "む", anyClass, v5, "polite negative"},
	{"りません", "る", anyClass, v5, "polite negative"},
	{"いませんでした", "う", anyClass, v5, "polite past negative"},
	{"きませんでした", "く", anyClass, v5, "polite past negative"},
	{"ぎませんでした", "ぐ", anyClass, v5, "polite past negative"},
	{"しませんでした", "す", anyClass, v5, "polite past negative"},
	{"ちませんでした", "つ", anyClass, v5, "polite past negative"},
	{"にませんでした", "ぬ", anyClass, v5, "polite past negative"},
	{"びませんでした", "ぶ", anyClass, v5, "polite past negative"},
	{"みませんでした", "む", anyClass, v5, "polite past negative"},
	{"りませんでした", "る", anyClass, v5, "polite past negative"},
	{"いましょう", "う", anyClass, v5, "polite volitional"},
	{"きましょう", "く", anyClass, v5, "polite volitional"},
	{"ぎましょう", "ぐ", anyClass, v5, "polite volitional"},
	{"しましょう", "す", anyClass, v5, "polite volitional"},
	{"ちましょう", "つ", anyClass, v5, "polite volitional"},
	{"にましょう", "ぬ", anyClass, v5, "polite volitional"},
	{"びましょう", "ぶ", anyClass, v5, "polite volitional"},
	{"みましょう", "む", anyClass, v5, "polite volitional"},
	{"りましょう", "る", anyClass, v5, "polite volitional"},
	{"いたい", "う", adjI, v5, "-tai"},
	{"きたい", "く", adjI, v5, "-tai"},
	{"ぎたい", "ぐ", adjI, v5, "-tai"},
	{"したい", "す", adjI, v5, "-tai"},
	{"ちたい", "つ", adjI, v5, "-tai"},
	{"にたい", "ぬ", adjI, v5, "-tai"},
	{"びたい", "ぶ", adjI, v5, "-tai"},
	{"みたい", "む", adjI, v5, "-tai"},
	{"りたい", "る", adjI, v5, "-tai"},
	{"いながら", "う", anyClass, v5, "-nagara"},
	{"きながら", "く", anyClass, v5, "-nagara"},
	{"ぎながら", "ぐ", anyClass, v5, "-nagara"},
	{"しながら", "す", anyClass, v5, "-nagara"},
	{"ちながら", "つ", anyClass, v5, "-nagara"},
	{"にながら", "ぬ", anyClass, v5, "-nagara"},
	{"びながら", "ぶ", anyClass, v5, "-nagara"},
	{"みながら", "む", anyClass, v5, "-nagara"},
	{"りながら", "る", anyClass, v5, "-nagara"},
	{"いなさい", "う", anyClass, v5, "polite imperative"},
	{"きなさい", "く", anyClass, v5, "polite imperative"},
	{"ぎなさい", "ぐ", anyClass, v5, "polite imperative"},
	{"しなさい", "す", anyClass, v5, "polite imperative"},
	{"ちなさい", "つ", anyClass, v5, "polite imperative"},
	{"になさい", "ぬ", anyClass, v5, "polite imperative"},
	{"びなさい", "ぶ", anyClass, v5, "polite imperative"},
	{"みなさい", "む", anyClass, v5, "polite imperative"},
	{"りなさい", "る", anyClass, v5, "polite imperative"},
	{"いそう", "う", anyClass, v5, "-sou"},
	{"きそう", "く", anyClass, v5, "-sou"},
	{"ぎそう", "ぐ", anyClass, v5, "-sou"},
	{"しそう", "す", anyClass, v5, "-sou"},
	{"ちそう", "つ", anyClass, v5, "-sou"},
	{"にそう", "ぬ", anyClass, v5, "-sou"},
	{"びそう", "ぶ", anyClass, v5, "-sou"},
	{"みそう", "む", anyClass, v5, "-sou"},
	{"りそう", "る", anyClass, v5, "-sou"},
	{"いすぎる", "う", v1, v5, "-sugiru"},
	{"きすぎる", "く", v1, v5, "-sugiru"},
	{"ぎすぎる", "ぐ", v1, v5, "-sugiru"},
	{"しすぎる", "す", v1, v5, "-sugiru"},
	{"ちすぎる", "つ", v1, v5, "-sugiru"},
	{"にすぎる", "ぬ", v1, v5, "-sugiru"},
	{"びすぎる", "ぶ", v1, v5, "-sugiru"},
	{"みすぎる", "む", v1, v5, "-sugiru"},
	{"りすぎる", "る", v1, v5, "-sugiru"},
	{"って", "う", anyClass, v5, "te"},
	{"いて", "く", anyClass, v5, "te"},
	{"いで", "ぐ", anyClass, v5, "te"},
	{"して", "す", anyClass, v5, "te"},
	{"って", "つ", anyClass, v5, "te"},
	{"んで", "ぬ", anyClass, v5, "te"},
	{"んで", "ぶ", anyClass, v5, "te"},
	{"んで", "む", anyClass, v5, "te"},
	{"って", "る", anyClass, v5, "te"},
	{"った", "う", anyClass, v5, "past"},
	{"いた", "く", anyClass, v5, "past"},
	{"いだ", "ぐ", anyClass, v5, "past"},
	{"した", "す", anyClass, v5, "past"},
	{"った", "つ", anyClass, v5, "past"},
	{"んだ", "ぬ", anyClass, v5, "past"},
	{"んだ", "ぶ", anyClass, v5, "past"},
	{"んだ", "む", anyClass, v5, "past"},
	{"った", "る", anyClass, v5, "past"},
	{"ったら", "う", anyClass, v5, "conditional"},
	{"いたら", "く", anyClass, v5, "conditional"},
	{"いだら", "ぐ", anyClass, v5, "conditional"},
	{"したら", "す", anyClass, v5, "conditional"},
	{"ったら", "つ", anyClass, v5, "conditional"},
	{"んだら", "ぬ", anyClass, v5, "conditional"},
	{"んだら", "ぶ", anyClass, v5, "conditional"},
	{"んだら", "む", anyClass, v5, "conditional"},
	{"ったら", "る", anyClass, v5, "conditional"},
	{"ったり", "う", anyClass, v5, "-tari"},
	{"いたり", "く", anyClass, v5, "-tari"},
	{"いだり", "ぐ", anyClass, v5, "-tari"},
	{"したり", "す", anyClass, v5, "-tari"},
	{"ったり", "つ", anyClass, v5, "-tari"},
	{"んだり", "ぬ", anyClass, v5, "-tari"},
	{"んだり", "ぶ", anyClass, v5, "-tari"},
	{"んだり", "む", anyClass, v5, "-tari"},
	{"ったり", "る", anyClass, v5, "-tari"},
	{"え", "う", anyClass, v5, "imperative"},
	{"け", "く", anyClass, v5, "imperative"},
	{"げ", "ぐ", anyClass, v5, "imperative"},
	{"せ", "す", anyClass, v5, "imperative"},
	{"て", "つ", anyClass, v5, "imperative"},
	{"ね", "ぬ", anyClass, v5, "imperative"},
	{"べ", "ぶ", anyClass, v5, "imperative"},
	{"め", "む", anyClass, v5, "imperative"},
	{"れ", "る", anyClass, v5, "imperative"},
	{"えば", "う", anyClass, v5, "provisional"},
	{"けば", "く", anyClass, v5, "provisional"},
	{"げば", "ぐ", anyClass, v5, "provisional"},
	{"せば", "す", anyClass, v5, "provisional"},
	{"てば", "つ", anyClass, v5, "provisional"},
	{"ねば", "ぬ", anyClass, v5, "provisional"},
	{"べば", "ぶ", anyClass, v5, "provisional"},
	{"めば", "む", anyClass, v5, "provisional"},
	{"える", "う", v1, v5, "potential"},
	{"ける", "く", v1, v5, "potential"},
	{"げる", "ぐ", v1, v5, "potential"},
	{"せる", "す", v1, v5, "potential"},
	{"てる", "つ", v1, v5, "potential"},
	{"ねる", "ぬ", v1, v5, "potential"},
	{"べる", "ぶ", v1, v5, "potential"},
	{"める", "む", v1, v5, "potential"},
	{"おう", "う", anyClass, v5, "volitional"},
	{"こう", "く", anyClass, v5, "volitional"},
	{"ごう", "ぐ", anyClass, v5, "volitional"},
	{"そう", "す", anyClass, v5, "volitional"},
	{"とう", "つ", anyClass, v5, "volitional"},
	{"のう", "ぬ", anyClass, v5, "volitional"},
	{"ぼう", "ぶ", anyClass, v5, "volitional"},
	{"もう", "む", anyClass, v5, "volitional"},
	{"ろう", "る", anyClass, v5, "volitional"},
	{"われる", "う", v1, v5, "passive"},
	{"かれる", "く", v1, v5, "passive"},
	{"がれる", "ぐ", v1, v5, "passive"},
	{"される", "す", v1, v5, "passive"},
	{"たれる", "つ", v1, v5, "passive"},
	{"なれる", "ぬ", v1, v5, "passive"},
	{"ばれる", "ぶ", v1, v5, "passive"},
	{"まれる", "む", v1, v5, "passive"},
	{"わせる", "う", v1, v5, "causative"},
	{"かせる", "く", v1, v5, "causative"},
	{"がせる", "ぐ", v1, v5, "causative"},
	{"させる", "す", v1, v5, "causative"},
	{"たせる", "つ", v1, v5, "causative"},
	{"なせる", "ぬ", v1, v5, "causative"},
	{"ばせる", "ぶ", v1, v5, "causative"},
	{"ませる", "む", v1, v5, "causative"},
	{"らせる", "る", v1, v5, "causative"},
	{"わされる", "う", v1, v5, "causative passive"},
	{"かされる", "く", v1, v5, "causative passive"},
	{"がされる", "ぐ", v1, v5, "causative passive"},
	{"さされる", "す", v1, v5, "causative passive"},
	{"たされる", "つ", v1, v5, "causative passive"},
	{"なされる", "ぬ", v1, v5, "causative passive"},
	{"ばされる", "ぶ", v1, v5, "causative passive"},
	{"まされる", "む", v1, v5, "causative passive"},
	{"らされる", "る", v1, v5, "causative passive"},
	{"わせられる", "う", v1, v5, "causative passive"},
	{"かせられる", "く", v1, v5, "causative passive"},
	{"がせられる", "ぐ", v1, v5, "causative passive"},
	{"させられる", "す", v1, v5, "causative passive"},
	{"たせられる", "つ", v1, v5, "causative passive"},
	{"なせられる", "ぬ", v1, v5, "causative passive"},
	{"ばせられる", "ぶ", v1, v5, "causative passive"},
	{"ませられる", "む", v1, v5, "causative passive"},
	{"らせられる", "る", v1, v5, "causative passive"},
	{"うな", "う", anyClass, v5, "imperative negative"},
	{"くな", "く", anyClass, v5, "imperative negative"},
	{"ぐな", "ぐ", anyClass, v5, "imperative negative"},
	{"すな", "す", anyClass, v5, "imperative negative"},
	{"つな", "つ", anyClass, v5, "imperative negative"},
	{"ぬな", "ぬ", anyClass, v5, "imperative negative"},
	{"ぶな", "ぶ", anyClass, v5, "imperative negative"},
	{"むな", "む", anyClass, v5, "imperative negative"},
	{"い", "う", anyClass, v5, "masu stem"},
	{"き", "く", anyClass, v5, "masu stem"},
	{"ぎ", "ぐ", anyClass, v5, "masu stem"},
	{"し", "す", anyClass, v5, "masu stem"},
	{"ち", "つ", anyClass, v5, "masu stem"},
	{"に", "ぬ", anyClass, v5, "masu stem"},
	{"び", "ぶ", anyClass, v5, "masu stem"},
	{"み", "む", anyClass, v5, "masu stem"},
	{"り", "る", anyClass, v5, "masu stem"},

	// Irregular godan: 行く
	{"行って", "行く", anyClass, v5, "te"},
	{"行った", "行く", anyClass, v5, "past"},
	{"行ったら", "行く", anyClass, v5, "conditional"},
	{"行ったり", "行く", anyClass, v5, "-tari"},
	{"いって", "いく", anyClass, v5, "te"},
	{"いった", "いく", anyClass, v5, "past"},
	{"いったら", "いく", anyClass, v5, "conditional"},
	{"いったり", "いく", anyClass, v5, "-tari"},

	// Suru verbs
	{"しない", "する", adjI, vs, "negative"},
	{"しないで", "する", anyClass, vs, "negative te"},
	{"せず", "する", anyClass, vs, "-zu"},
	{"した", "する", anyClass, vs, "past"},
	{"して", "する", anyClass, vs, "te"},
	{"したら", "する", anyClass, vs, "conditional"},
	{"したり", "する", anyClass, vs, "-tari"},
	{"します", "する", anyClass, vs, "polite"},
	{"しました", "する", anyClass, vs, "polite past"},
	{"しません", "する", anyClass, vs, "polite negative"},
	{"しませんでした", "する", anyClass, vs, "polite past negative"},
	{"しましょう", "する", anyClass, vs, "polite volitional"},
	{"しよう", "する", anyClass, vs, "volitional"},
	{"しろ", "する", anyClass, vs, "imperative"},
	{"せよ", "する", anyClass, vs, "imperative"},
	{"しなさい", "する", anyClass, vs, "polite imperative"},
	{"したい", "する", adjI, vs, "-tai"},
	{"すれば", "する", anyClass, vs, "provisional"},
	{"しながら", "する", anyClass, vs, "-nagara"},
	{"しすぎる", "する", v1, vs, "-sugiru"},
	{"される", "する", v1, vs, "passive"},
	{"させる", "する", v1, vs, "causative"},
	{"させられる", "する", v1, vs, "causative passive"},
	{"できる", "する", v1, vs, "potential"},
	{"するな", "する", anyClass, vs, "imperative negative"},
	{"する", "", vs, vs, "suru verb"},

	// I-adjectives
	{"くない", "い", adjI, adjI, "negative"},
	{"かった", "い", anyClass, adjI, "past"},
	{"くて", "い", anyClass, adjI, "te"},
	{"く", "い", anyClass, adjI, "adverbial"},
	{"さ", "い", anyClass, adjI, "noun"},
	{"ければ", "い", anyClass, adjI, "provisional"},
	{"かったら", "い", anyClass, adjI, "conditional"},
	{"かったり", "い", anyClass, adjI, "-tari"},
	{"そう", "い", anyClass, adjI, "-sou"},
	{"すぎる", "い", v1, adjI, "-sugiru"},
	{"くありません", "い", anyClass, adjI, "polite negative"},
	{"くなる", "い", v5, adjI, "becoming"},

	// Auxiliary reductions
	{"ている", "て", v1, v1, "progressive or perfect"},
	{"でいる", "で", v1, v1, "progressive or perfect"},
	{"てる", "て", v1, v1, "progressive or perfect"},
	{"でる", "で", v1, v1, "progressive or perfect"},
	{"ておく", "て", v5, v5, "-oku"},
	{"でおく", "で", v5, v5, "-oku"},
	{"とく", "て", v5, v5, "-oku"},
	{"どく", "で", v5, v5, "-oku"},
	{"てしまう", "て", v5, v5, "-shimau"},
	{"でしまう", "で", v5, v5, "-shimau"},
	{"ちゃう", "て", v5, v5, "-shimau"},
	{"じゃう", "で", v5, v5, "-shimau"},
	{"てみる", "て", v1, v1, "-miru"},
	{"でみる", "で", v1, v1, "-miru"},

	// Ichidan masu stem, as in 食べに行く
	{"え", "える", anyClass, v1, "masu stem"},
	{"け", "ける", anyClass, v1, "masu stem"},
	{"げ", "げる", anyClass, v1, "masu stem"},
	{"せ", "せる", anyClass, v1, "masu stem"},
	{"ぜ", "ぜる", anyClass, v1, "masu stem"},
	{"て", "てる", anyClass, v1, "masu stem"},
	{"で", "でる", anyClass, v1, "masu stem"},
	{"ね", "ねる", anyClass, v1, "masu stem"},
	{"へ", "へる", anyClass, v1, "masu stem"},
	{"べ", "べる", anyClass, v1, "masu stem"},
	{"ぺ", "ぺる", anyClass, v1, "masu stem"},
	{"め", "める", anyClass, v1, "masu stem"},
	{"れ", "れる", anyClass, v1, "masu stem"},
	{"き", "きる", anyClass, v1, "masu stem"},
	{"ぎ", "ぎる", anyClass, v1, "masu stem"},
	{"し", "しる", anyClass, v1, "masu stem"},
	{"じ", "じる", anyClass, v1, "masu stem"},
	{"ち", "ちる", anyClass, v1, "masu stem"},
	{"に", "にる", anyClass, v1, "masu stem"},
	{"ひ", "ひる", anyClass, v1, "masu stem"},
	{"び", "びる", anyClass, v1, "masu stem"},
	{"み", "みる", anyClass, v1, "masu stem"},
	{"り", "りる", anyClass, v1, "masu stem"},
}

// DefaultRules returns a copy of the built-in rule table.
func DefaultRules() []domain.DeinflectionRule {
	rules := make([]domain.DeinflectionRule, len(ruleRows))
	for i, row := range ruleRows {
		rules[i] = domain.DeinflectionRule{
			InflectedSuffix: row.inflected,
			BaseSuffix:      row.base,
			InputClasses:    row.in,
			OutputClasses:   row.out,
			Reason:          row.reason,
		}
	}
	return rules
}
