package outfits

// Static lookup data for the engine. Nothing here is mutated at runtime.

type slotRule struct {
	slot     Slot
	keywords []string
}

// slotRules are tried in order against category and subcategory text; the
// first rule with a matching keyword wins. Dresses are special cased in
// Categorize because they also match on the description.
var slotRules = []slotRule{
	{SlotTops, []string{"top", "shirt", "blouse", "sweater", "tee", "t-shirt"}},
	{SlotBottoms, []string{"pant", "jean", "skirt", "short", "bottom", "trouser"}},
	{SlotFootwear, []string{"shoe", "boot", "sneaker", "sandal", "footwear"}},
	{SlotOuterwear, []string{"jacket", "coat", "hoodie", "blazer", "sweater", "cardigan"}},
	{SlotAccessories, []string{"accessory", "jewelry", "hat", "scarf", "belt", "bag", "watch", "glasses"}},
}

var dressKeywords = []string{"dress"}

// descriptionRules is the reduced set used when nothing else matched.
var descriptionRules = []slotRule{
	{SlotTops, []string{"shirt", "top", "blouse"}},
	{SlotBottoms, []string{"pant", "jean", "skirt"}},
	{SlotFootwear, []string{"boot", "sneaker", "sandal"}},
}

// simpleSlotRules drive the five slot partition used by Recommend. There is no
// Dresses slot, dresses are treated as tops.
var simpleSlotRules = []slotRule{
	{SlotTops, []string{"top", "shirt", "blouse", "sweater", "tee", "dress"}},
	{SlotBottoms, []string{"pant", "jean", "skirt", "short", "bottom", "trouser"}},
	{SlotShoes, []string{"shoe", "boot", "sneaker", "sandal", "footwear"}},
	{SlotOuterwear, []string{"jacket", "coat", "hoodie", "blazer", "cardigan"}},
	{SlotAccessories, []string{"accessory", "jewelry", "hat", "scarf", "belt", "bag", "watch", "glasses"}},
}

type themeRule struct {
	required []Slot
	optional []Slot
}

var coreSlots = []Slot{SlotTops, SlotBottoms, SlotFootwear}

var themeRules = map[Theme]themeRule{
	ThemeCasual:     {required: coreSlots, optional: []Slot{SlotOuterwear, SlotAccessories}},
	ThemeFormal:     {required: coreSlots, optional: []Slot{SlotOuterwear, SlotAccessories}},
	ThemeBusiness:   {required: coreSlots, optional: []Slot{SlotOuterwear, SlotAccessories}},
	ThemeAthletic:   {required: coreSlots, optional: []Slot{SlotOuterwear}},
	ThemeBohemian:   {required: []Slot{SlotTops, SlotBottoms}, optional: []Slot{SlotFootwear, SlotAccessories}},
	ThemeVintage:    {required: coreSlots, optional: []Slot{SlotOuterwear, SlotAccessories}},
	ThemeMinimalist: {required: []Slot{SlotTops, SlotBottoms}, optional: []Slot{SlotFootwear, SlotOuterwear}},
	ThemeStreetwear: {required: coreSlots, optional: []Slot{SlotOuterwear, SlotAccessories}},
	ThemePreppy:     {required: coreSlots, optional: []Slot{SlotOuterwear, SlotAccessories}},
	ThemeEvening:    {required: coreSlots, optional: []Slot{SlotAccessories, SlotOuterwear}},
}

type synonymRule struct {
	keywords []string
	themes   []Theme
}

// themeSynonyms add one point per keyword found to every listed theme.
var themeSynonyms = []synonymRule{
	{[]string{"jean", "t-shirt"}, []Theme{ThemeCasual}},
	{[]string{"suit", "blazer"}, []Theme{ThemeBusiness, ThemeFormal}},
	{[]string{"sport", "running"}, []Theme{ThemeAthletic}},
}

// weakThemeSignal is the highest keyword count that is still treated as noise.
const weakThemeSignal = 3

// preferenceThemePoints is what a stated preference of weight 1 contributes
// to the theme it names.
const preferenceThemePoints = 4

type Color string

const (
	ColorBlack    Color = "Black"
	ColorWhite    Color = "White"
	ColorGray     Color = "Gray"
	ColorNavy     Color = "Navy"
	ColorBlue     Color = "Blue"
	ColorRed      Color = "Red"
	ColorBurgundy Color = "Burgundy"
	ColorPink     Color = "Pink"
	ColorPurple   Color = "Purple"
	ColorGreen    Color = "Green"
	ColorOlive    Color = "Olive"
	ColorTeal     Color = "Teal"
	ColorYellow   Color = "Yellow"
	ColorOrange   Color = "Orange"
	ColorBrown    Color = "Brown"
	ColorBeige    Color = "Beige"
	ColorCream    Color = "Cream"
	ColorGold     Color = "Gold"
	ColorSilver   Color = "Silver"
)

type colorRule struct {
	color   Color
	aliases []string
}

// colorRules are matched as substrings in order, so more specific names come
// before the generic ones they contain ("navy blue" is Navy, not Blue).
var colorRules = []colorRule{
	{ColorNavy, []string{"navy"}},
	{ColorTeal, []string{"turquoise", "teal"}},
	{ColorBurgundy, []string{"burgundy", "maroon", "wine"}},
	{ColorOlive, []string{"olive"}},
	{ColorCream, []string{"cream", "ivory", "off-white", "offwhite"}},
	{ColorBeige, []string{"beige", "khaki", "camel", "tan"}},
	{ColorGray, []string{"grey", "gray", "charcoal"}},
	{ColorBlack, []string{"black"}},
	{ColorWhite, []string{"white"}},
	{ColorBlue, []string{"blue", "denim"}},
	{ColorRed, []string{"red", "crimson"}},
	{ColorPink, []string{"pink", "blush", "rose"}},
	{ColorPurple, []string{"purple", "violet", "lavender", "lilac"}},
	{ColorGreen, []string{"green", "mint", "emerald"}},
	{ColorYellow, []string{"yellow", "mustard"}},
	{ColorOrange, []string{"orange", "coral", "rust"}},
	{ColorBrown, []string{"brown", "chocolate"}},
	{ColorGold, []string{"gold"}},
	{ColorSilver, []string{"silver"}},
}

// colorCompatibility is the "goes well with" table used by SelectItem. It is
// read from the anchor's side only and is deliberately not symmetric.
var colorCompatibility = map[Color][]Color{
	ColorBlack:    {ColorWhite, ColorGray, ColorRed, ColorPink, ColorBeige, ColorBlue, ColorYellow, ColorSilver, ColorGold},
	ColorWhite:    {ColorBlack, ColorNavy, ColorBlue, ColorGray, ColorBeige, ColorRed, ColorGreen, ColorBrown, ColorPink},
	ColorGray:     {ColorBlack, ColorWhite, ColorNavy, ColorPink, ColorBurgundy, ColorPurple, ColorYellow},
	ColorNavy:     {ColorWhite, ColorBeige, ColorCream, ColorGray, ColorRed, ColorPink, ColorBrown},
	ColorBlue:     {ColorWhite, ColorBeige, ColorGray, ColorBrown, ColorOrange, ColorYellow},
	ColorRed:      {ColorBlack, ColorWhite, ColorNavy, ColorGray, ColorBeige},
	ColorBurgundy: {ColorGray, ColorBeige, ColorCream, ColorNavy, ColorBlack},
	ColorPink:     {ColorGray, ColorWhite, ColorNavy, ColorBeige, ColorBlack},
	ColorPurple:   {ColorGray, ColorWhite, ColorBlack, ColorYellow},
	ColorGreen:    {ColorWhite, ColorBeige, ColorBrown, ColorNavy, ColorCream},
	ColorOlive:    {ColorWhite, ColorBeige, ColorCream, ColorBlack, ColorBrown},
	ColorTeal:     {ColorWhite, ColorBeige, ColorGray, ColorCream},
	ColorYellow:   {ColorNavy, ColorGray, ColorWhite, ColorBlue},
	ColorOrange:   {ColorNavy, ColorBlue, ColorWhite, ColorBrown},
	ColorBrown:    {ColorBeige, ColorCream, ColorWhite, ColorBlue, ColorGreen, ColorOlive},
	ColorBeige:    {ColorWhite, ColorBrown, ColorNavy, ColorBlack, ColorOlive, ColorBurgundy},
	ColorCream:    {ColorNavy, ColorBrown, ColorOlive, ColorBurgundy, ColorBlack},
	ColorGold:     {ColorBlack, ColorWhite, ColorNavy, ColorBurgundy},
	ColorSilver:   {ColorBlack, ColorGray, ColorNavy, ColorWhite},
}

// complementaryColors is used only when scoring recommendations. It is a
// different table from colorCompatibility and is checked in both directions.
var complementaryColors = map[Color][]Color{
	ColorRed:    {ColorGreen, ColorWhite, ColorBlack},
	ColorBlue:   {ColorOrange, ColorWhite, ColorBeige},
	ColorYellow: {ColorPurple, ColorNavy},
	ColorGreen:  {ColorRed, ColorPink},
	ColorOrange: {ColorBlue, ColorNavy},
	ColorPurple: {ColorYellow, ColorGreen},
	ColorBlack:  {ColorWhite, ColorRed},
	ColorWhite:  {ColorBlack, ColorNavy},
	ColorNavy:   {ColorCream, ColorBeige},
	ColorTeal:   {ColorCream},
}

var outerwearSeasonProbability = map[Season]float64{
	SeasonWinter: 0.9,
	SeasonFall:   0.7,
	SeasonSpring: 0.5,
	SeasonSummer: 0.2,
}

const defaultOuterwearProbability = 0.5

var outerwearThemeFactor = map[Theme]float64{
	ThemeAthletic:   0.5,
	ThemeEvening:    0.5,
	ThemeStreetwear: 1.2,
	ThemeCasual:     1.2,
}

// Recommendation scoring weights.
const (
	baseStyleRating       = 3.0
	complementaryBonus    = 0.5
	preferenceMatchFactor = 0.25
	maxStyleRating        = 5.0
	minStyleRating        = 0.0

	recommendOuterwearChance = 0.3
	recommendAccessoryChance = 0.5
	dressChance              = 0.5
	fallbackItemLimit        = 4
	minFallbackItems         = 2
)

var genericAdjectives = []string{"Stylish", "Chic", "Classic", "Modern", "Effortless", "Fresh", "Signature", "Polished"}

var themeAdjectives = map[Theme][]string{
	ThemeCasual:     {"Everyday", "Laid-back", "Comfortable", "Weekend"},
	ThemeFormal:     {"Elegant", "Refined", "Sophisticated", "Tailored"},
	ThemeBusiness:   {"Professional", "Sharp", "Confident", "Boardroom"},
	ThemeAthletic:   {"Active", "Sporty", "Energetic", "Dynamic"},
	ThemeBohemian:   {"Free-spirited", "Earthy", "Flowing", "Artsy"},
	ThemeVintage:    {"Retro", "Timeless", "Nostalgic", "Throwback"},
	ThemeMinimalist: {"Clean", "Simple", "Understated", "Sleek"},
	ThemeStreetwear: {"Urban", "Bold", "Edgy", "Street-ready"},
	ThemePreppy:     {"Crisp", "Collegiate", "Smart", "Tidy"},
	ThemeEvening:    {"Glamorous", "Dazzling", "Night-out", "Luxe"},
}

// nameTemplates use {adj}, {season} and {theme} placeholders.
var nameTemplates = []string{
	"{adj} {season} {theme}",
	"The {adj} {theme}",
	"{season} {theme} Ensemble",
	"{adj} {theme} Look",
	"Perfect {season} {theme}",
}
