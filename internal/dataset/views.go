package dataset

// View is one sidebar menu entry. Single-dataset views show one ranked
// bar chart with its backing table. Demographics views show two ranked
// bar charts side by side (race, ethnicity) plus a sex proportion chart.
type View struct {
	Key   string
	Label string
	Blurb string

	// Bars lists dataset keys rendered as ranked bar charts, in order.
	Bars []string

	// Pie is the dataset key rendered as a proportion chart, or empty.
	Pie string
}

// Composite reports whether the view combines multiple charts.
func (v View) Composite() bool {
	return len(v.Bars) > 1 || v.Pie != ""
}

// DatasetKeys returns every dataset key the view draws from.
func (v View) DatasetKeys() []string {
	keys := make([]string, 0, len(v.Bars)+1)
	keys = append(keys, v.Bars...)
	if v.Pie != "" {
		keys = append(keys, v.Pie)
	}
	return keys
}

// views is the fixed sidebar menu. Selection is stateless; a menu choice
// maps straight to the datasets below.
var views = []View{
	{
		Key:   "offense_linked",
		Label: "Offense Linked to Another Offense",
		Blurb: "The most common offenses that are linked to another crime.",
		Bars:  []string{"offense_linked"},
	},
	{
		Key:   "weapon_type",
		Label: "Type of Weapon Involved",
		Blurb: "The types of weapons most frequently involved in offenses.",
		Bars:  []string{"weapon_type"},
	},
	{
		Key:   "victim_relationship",
		Label: "Victim's Relationship to Offender",
		Blurb: "The relationship between victims and offenders in reported incidents.",
		Bars:  []string{"victim_relationship"},
	},
	{
		Key:   "location_type",
		Label: "Location Type",
		Blurb: "Where crimes are most likely to occur based on location type.",
		Bars:  []string{"location_type"},
	},
	{
		Key:   "victim_demographics",
		Label: "Victim Demographics",
		Blurb: "A breakdown of victim demographics by race, ethnicity, and sex.",
		Bars:  []string{"victim_race", "victim_ethnicity"},
		Pie:   "victim_sex",
	},
	{
		Key:   "offender_demographics",
		Label: "Offender Demographics",
		Blurb: "A breakdown of offender demographics by race, ethnicity, and sex.",
		Bars:  []string{"offender_race", "offender_ethnicity"},
		Pie:   "offender_sex",
	},
}

// Views returns the sidebar menu entries in display order.
func Views() []View {
	out := make([]View, len(views))
	copy(out, views)
	return out
}

// ViewByKey returns the view for a menu key.
func ViewByKey(key string) (View, bool) {
	for _, v := range views {
		if v.Key == key {
			return v, true
		}
	}
	return View{}, false
}
