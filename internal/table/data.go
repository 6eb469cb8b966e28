package table

// staticMods is the compiled-in modifier list: canonical lowercase phrase ->
// stat identifiers. Numeric placeholders in item text are written as "#".
// Phrases that ambiguously affect several attributes map to every affected
// identifier. Transcribed from the legacy lookup table; duplicate phrases
// resolve last-write-wins at build time.
var staticMods = map[string][]string{
	// life / mana / energy shield
	"to maximum life":                                      {"explicit.stat_3299347043"},
	"+# to maximum life":                                   {"explicit.stat_3299347043"},
	"#% increased maximum life":                            {"explicit.stat_983749596"},
	"to maximum mana":                                      {"explicit.stat_1050105434"},
	"+# to maximum mana":                                   {"explicit.stat_1050105434"},
	"#% increased maximum mana":                            {"explicit.stat_2748665614"},
	"to maximum energy shield":                             {"explicit.stat_3489782002"},
	"+# to maximum energy shield":                          {"explicit.stat_3489782002"},
	"#% increased maximum energy shield":                   {"explicit.stat_2482852589"},
	"#% increased energy shield recharge rate":             {"explicit.stat_2339757871"},
	"#% faster start of energy shield recharge":            {"explicit.stat_1782086450"},
	"#% of physical damage from hits taken as fire damage": {"explicit.stat_3342989455"},
	"regenerate # life per second":                         {"explicit.stat_3325883026"},
	"#% of life regenerated per second":                    {"explicit.stat_836936635"},
	"#% increased life regeneration rate":                  {"explicit.stat_44972811"},
	"# life gained on kill":                                {"explicit.stat_3695891184"},
	"# life gained for each enemy hit by attacks":          {"explicit.stat_2797971005"},
	"# mana gained on kill":                                {"explicit.stat_1604736568"},
	"# mana gained for each enemy hit by attacks":          {"explicit.stat_820939409"},
	"#% increased mana regeneration rate":                  {"explicit.stat_789117908"},
	"#% of damage taken from mana before life":             {"explicit.stat_458438597"},
	"#% reduced mana cost of skills":                       {"explicit.stat_474294393"},
	"#% increased mana reservation efficiency of skills":   {"explicit.stat_1269219558"},

	// attributes
	"to strength":        {"explicit.stat_4080418644"},
	"+# to strength":     {"explicit.stat_4080418644"},
	"to dexterity":       {"explicit.stat_3261801346"},
	"+# to dexterity":    {"explicit.stat_3261801346"},
	"to intelligence":    {"explicit.stat_328541901"},
	"+# to intelligence": {"explicit.stat_328541901"},
	"to all attributes": {
		"explicit.stat_4080418644",
		"explicit.stat_3261801346",
		"explicit.stat_328541901",
	},
	"+# to all attributes": {
		"explicit.stat_4080418644",
		"explicit.stat_3261801346",
		"explicit.stat_328541901",
	},
	"to strength and dexterity":     {"explicit.stat_538848803"},
	"to strength and intelligence":  {"explicit.stat_1535626285"},
	"to dexterity and intelligence": {"explicit.stat_2300185227"},
	"#% increased attributes":       {"explicit.stat_3143208761"},

	// resistances
	"to fire resistance":          {"explicit.stat_3372524247"},
	"+#% to fire resistance":      {"explicit.stat_3372524247"},
	"to cold resistance":          {"explicit.stat_4220027924"},
	"+#% to cold resistance":      {"explicit.stat_4220027924"},
	"to lightning resistance":     {"explicit.stat_1671376347"},
	"+#% to lightning resistance": {"explicit.stat_1671376347"},
	"to chaos resistance":         {"explicit.stat_2923486259"},
	"+#% to chaos resistance":     {"explicit.stat_2923486259"},
	"to all elemental resistances": {
		"explicit.stat_3372524247",
		"explicit.stat_4220027924",
		"explicit.stat_1671376347",
	},
	"+#% to all elemental resistances": {
		"explicit.stat_3372524247",
		"explicit.stat_4220027924",
		"explicit.stat_1671376347",
	},
	"to fire and cold resistances":       {"explicit.stat_2915988346"},
	"to fire and lightning resistances":  {"explicit.stat_3441501978"},
	"to cold and lightning resistances":  {"explicit.stat_4277795662"},
	"#% to maximum fire resistance":      {"explicit.stat_4095671657"},
	"#% to maximum cold resistance":      {"explicit.stat_3676141501"},
	"#% to maximum lightning resistance": {"explicit.stat_1011760251"},

	// offence: flat damage
	"adds # to # physical damage":             {"explicit.stat_1940865751"},
	"adds # to # physical damage to attacks":  {"explicit.stat_3032590688"},
	"adds # to # fire damage":                 {"explicit.stat_709508406"},
	"adds # to # fire damage to attacks":      {"explicit.stat_1573130764"},
	"adds # to # cold damage":                 {"explicit.stat_1037193709"},
	"adds # to # cold damage to attacks":      {"explicit.stat_4067062424"},
	"adds # to # lightning damage":            {"explicit.stat_3336890334"},
	"adds # to # lightning damage to attacks": {"explicit.stat_1754445556"},
	"adds # to # chaos damage":                {"explicit.stat_2223678961"},
	"adds # to # chaos damage to attacks":     {"explicit.stat_674553446"},
	"adds # to # fire damage to spells":       {"explicit.stat_1133016593"},
	"adds # to # cold damage to spells":       {"explicit.stat_2469416729"},
	"adds # to # lightning damage to spells":  {"explicit.stat_2831165374"},
	"adds # to # chaos damage to spells":      {"explicit.stat_2300399854"},

	// offence: increased damage
	"#% increased physical damage":                     {"explicit.stat_1509134228"},
	"#% increased fire damage":                         {"explicit.stat_3962278098"},
	"#% increased cold damage":                         {"explicit.stat_3291658075"},
	"#% increased lightning damage":                    {"explicit.stat_2231156303"},
	"#% increased chaos damage":                        {"explicit.stat_736967255"},
	"#% increased elemental damage":                    {"explicit.stat_3141070085"},
	"#% increased spell damage":                        {"explicit.stat_2974417149"},
	"#% increased attack damage":                       {"explicit.stat_2843214518"},
	"#% increased projectile damage":                   {"explicit.stat_1839076647"},
	"#% increased area damage":                         {"explicit.stat_4251717817"},
	"#% increased melee damage":                        {"explicit.stat_1002362373"},
	"#% increased damage over time":                    {"explicit.stat_967627487"},
	"#% increased burning damage":                      {"explicit.stat_1175385867"},
	"#% increased elemental damage with attack skills": {"explicit.stat_387439868"},
	"#% increased global physical damage":              {"explicit.stat_1310194496"},
	"#% increased damage":                              {"explicit.stat_2154246560"},

	// offence: crit
	"#% increased critical strike chance":                    {"explicit.stat_2375316951"},
	"#% increased global critical strike chance":             {"explicit.stat_587431675"},
	"#% to global critical strike multiplier":                {"explicit.stat_3556824919"},
	"+#% to global critical strike multiplier":               {"explicit.stat_3556824919"},
	"#% increased critical strike chance for spells":         {"explicit.stat_737908626"},
	"#% to critical strike multiplier with elemental skills": {"explicit.stat_1569407745"},

	// offence: speed
	"#% increased attack speed":                     {"explicit.stat_210067635"},
	"#% increased cast speed":                       {"explicit.stat_2891184298"},
	"#% increased attack and cast speed":            {"explicit.stat_2672805335"},
	"#% increased movement speed":                   {"explicit.stat_2250533757"},
	"#% increased projectile speed":                 {"explicit.stat_3759663284"},
	"#% increased attack speed while dual wielding": {"explicit.stat_4249220643"},

	// offence: ailments and misc
	"#% chance to ignite":                          {"explicit.stat_1335054179"},
	"#% chance to freeze":                          {"explicit.stat_2309614417"},
	"#% chance to shock":                           {"explicit.stat_1871056256"},
	"#% chance to poison on hit":                   {"explicit.stat_795138349"},
	"#% chance to cause bleeding on hit":           {"explicit.stat_1519615863"},
	"#% increased ignite duration on enemies":      {"explicit.stat_1086147743"},
	"#% increased shock duration on enemies":       {"explicit.stat_3668351662"},
	"#% increased freeze duration on enemies":      {"explicit.stat_1073942215"},
	"#% increased poison duration":                 {"explicit.stat_2011656677"},
	"#% chance to deal double damage":              {"explicit.stat_1172810729"},
	"#% of physical attack damage leeched as life": {"explicit.stat_3593843976"},
	"#% of physical attack damage leeched as mana": {"explicit.stat_3237948413"},
	"#% of attack damage leeched as life":          {"explicit.stat_2557965901"},
	"#% increased damage with bleeding":            {"explicit.stat_1294978145"},
	"#% increased damage with poison":              {"explicit.stat_1290399200"},

	// defence
	"to armour":                                              {"explicit.stat_809229260"},
	"+# to armour":                                           {"explicit.stat_809229260"},
	"#% increased armour":                                    {"explicit.stat_1062208444"},
	"to evasion rating":                                      {"explicit.stat_2144192055"},
	"+# to evasion rating":                                   {"explicit.stat_2144192055"},
	"#% increased evasion rating":                            {"explicit.stat_124859000"},
	"#% increased armour and evasion":                        {"explicit.stat_2451402625"},
	"#% increased armour and energy shield":                  {"explicit.stat_3321629045"},
	"#% increased evasion and energy shield":                 {"explicit.stat_1999113824"},
	"#% increased armour, evasion and energy shield":         {"explicit.stat_3523867985"},
	"#% chance to block attack damage":                       {"explicit.stat_2530372417"},
	"#% chance to block spell damage":                        {"explicit.stat_561307714"},
	"#% chance to suppress spell damage":                     {"explicit.stat_3680664274"},
	"#% chance to avoid being stunned":                       {"explicit.stat_4262448838"},
	"#% chance to avoid being frozen":                        {"explicit.stat_1514829491"},
	"#% chance to avoid being ignited":                       {"explicit.stat_1783006896"},
	"#% chance to avoid being shocked":                       {"explicit.stat_1871765599"},
	"#% chance to avoid elemental ailments":                  {"explicit.stat_3005472710"},
	"#% reduced extra damage from critical strikes":          {"explicit.stat_3855016469"},
	"#% increased stun and block recovery":                   {"explicit.stat_2511217560"},
	"you take #% reduced extra damage from critical strikes": {"explicit.stat_3855016469"},
	"#% additional physical damage reduction":                {"explicit.stat_3771516363"},

	// skills and gems
	"to level of socketed gems":                     {"explicit.stat_2843100721"},
	"+# to level of socketed gems":                  {"explicit.stat_2843100721"},
	"+# to level of socketed fire gems":             {"explicit.stat_339179093"},
	"+# to level of socketed cold gems":             {"explicit.stat_1645459191"},
	"+# to level of socketed lightning gems":        {"explicit.stat_4043416969"},
	"+# to level of socketed chaos gems":            {"explicit.stat_2675603254"},
	"+# to level of socketed melee gems":            {"explicit.stat_829382474"},
	"+# to level of socketed bow gems":              {"explicit.stat_3789501637"},
	"+# to level of socketed minion gems":           {"explicit.stat_3604946673"},
	"+# to level of socketed support gems":          {"explicit.stat_4154259475"},
	"+# to level of all skill gems":                 {"explicit.stat_1509756966"},
	"+# to level of all spell skill gems":           {"explicit.stat_124131830"},
	"+# to level of all fire spell skill gems":      {"explicit.stat_1506185293"},
	"+# to level of all cold spell skill gems":      {"explicit.stat_1811130680"},
	"+# to level of all lightning spell skill gems": {"explicit.stat_2787202667"},
	"+# to level of all physical spell skill gems":  {"explicit.stat_1475280427"},
	"+# to level of all chaos spell skill gems":     {"explicit.stat_2675036555"},
	"+# to level of all minion skill gems":          {"explicit.stat_2813516522"},

	// minions
	"minions deal #% increased damage":         {"explicit.stat_1589917703"},
	"minions have #% increased maximum life":   {"explicit.stat_770672621"},
	"minions have #% increased attack speed":   {"explicit.stat_3375935924"},
	"minions have #% increased cast speed":     {"explicit.stat_4000101551"},
	"minions have #% increased movement speed": {"explicit.stat_174664100"},

	// flasks and charges
	"#% increased flask charges gained":         {"explicit.stat_1452809865"},
	"#% increased flask effect duration":        {"explicit.stat_3741323227"},
	"#% reduced flask charges used":             {"explicit.stat_644456512"},
	"#% increased flask life recovery rate":     {"explicit.stat_821241191"},
	"#% increased flask mana recovery rate":     {"explicit.stat_2222186378"},
	"+# to maximum number of endurance charges": {"explicit.stat_1515657623"},
	"+# to maximum number of frenzy charges":    {"explicit.stat_4078695"},
	"+# to maximum number of power charges":     {"explicit.stat_227523295"},
	"#% chance to gain a power charge on kill":  {"explicit.stat_2483795307"},
	"#% chance to gain a frenzy charge on kill": {"explicit.stat_1826802197"},

	// accuracy, rarity, misc utility
	"to accuracy rating":                                              {"explicit.stat_803737631"},
	"+# to accuracy rating":                                           {"explicit.stat_803737631"},
	"#% increased accuracy rating":                                    {"explicit.stat_624954515"},
	"#% increased rarity of items found":                              {"explicit.stat_3917489142"},
	"#% increased quantity of items found":                            {"explicit.stat_884586851"},
	"#% increased light radius":                                       {"explicit.stat_1263695895"},
	"#% increased stun duration on enemies":                           {"explicit.stat_2517001139"},
	"#% reduced enemy stun threshold":                                 {"explicit.stat_1443060084"},
	"#% increased skill effect duration":                              {"explicit.stat_3377888098"},
	"#% increased cooldown recovery rate":                             {"explicit.stat_1004011302"},
	"#% increased experience gain":                                    {"explicit.stat_3666934677"},
	"#% increased area of effect":                                     {"explicit.stat_280731498"},
	"#% increased duration of ailments on enemies":                    {"explicit.stat_2419712247"},
	"socketed gems are supported by level # added fire damage":        {"explicit.stat_2572042788"},
	"socketed gems are supported by level # faster attacks":           {"explicit.stat_928701213"},
	"socketed gems are supported by level # increased area of effect": {"explicit.stat_3720936304"},
	"socketed gems are supported by level # melee physical damage":    {"explicit.stat_2985291457"},
	"socketed gems are supported by level # multistrike":              {"explicit.stat_2501237765"},

	// implicit-style phrases carried from the legacy list
	"has # abyssal sockets":                                   {"explicit.stat_3527617737"},
	"item sells for much more to vendors":                     {"explicit.stat_3513534186"},
	"corrupted":                                               {"explicit.stat_1866911844"},
	"you can apply an additional curse":                       {"explicit.stat_30642521"},
	"curse enemies with level # vulnerability on hit":         {"explicit.stat_3967845372"},
	"curse enemies with level # despair on hit":               {"explicit.stat_2764915899"},
	"#% increased effect of non-curse auras from your skills": {"explicit.stat_1880071428"},
	"#% increased effect of your curses":                      {"explicit.stat_2353576063"},
	"nearby enemies have -#% to fire resistance":              {"explicit.stat_1849749435"},
	"nearby enemies have -#% to cold resistance":              {"explicit.stat_998063864"},
	"nearby enemies have -#% to lightning resistance":         {"explicit.stat_3634038682"},

	// pseudo aggregates used by the trade site
	"total to maximum life":              {"pseudo.pseudo_total_life"},
	"total to all elemental resistances": {"pseudo.pseudo_total_all_elemental_resistance"},
	"total elemental resistance":         {"pseudo.pseudo_total_elemental_resistance"},
	"total resistance":                   {"pseudo.pseudo_total_resistance"},
	"total to strength":                  {"pseudo.pseudo_total_strength"},
	"total to dexterity":                 {"pseudo.pseudo_total_dexterity"},
	"total to intelligence":              {"pseudo.pseudo_total_intelligence"},
	"total to all attributes": {
		"pseudo.pseudo_total_strength",
		"pseudo.pseudo_total_dexterity",
		"pseudo.pseudo_total_intelligence",
	},
	"total attack speed":   {"pseudo.pseudo_total_attack_speed"},
	"total cast speed":     {"pseudo.pseudo_total_cast_speed"},
	"total movement speed": {"pseudo.pseudo_increased_movement_speed"},
}
