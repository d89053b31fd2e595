package dataset

// defaultSources is the fixed set of ten input files published with the
// FBI pre-aggregated extracts. The two sex tables are the only wide ones.
var defaultSources = []Source{
	{Key: "offense_linked", Label: "Offense Linked to Another Offense", File: "offense_linked.csv", Shape: ShapeFlat},
	{Key: "weapon_type", Label: "Type of Weapon Involved by Offense", File: "weapon_type.csv", Shape: ShapeFlat},
	{Key: "victim_relationship", Label: "Victim's Relationship to Offender", File: "victim_relationship.csv", Shape: ShapeFlat},
	{Key: "location_type", Label: "Location Type", File: "location_type.csv", Shape: ShapeFlat},
	{Key: "victim_ethnicity", Label: "Victim Ethnicity", File: "victim_ethnicity.csv", Shape: ShapeFlat},
	{Key: "offender_ethnicity", Label: "Offender Ethnicity", File: "offender_ethnicity.csv", Shape: ShapeFlat},
	{Key: "victim_race", Label: "Victim Race", File: "victim_race.csv", Shape: ShapeFlat},
	{Key: "offender_race", Label: "Offender Race", File: "offender_race.csv", Shape: ShapeFlat},
	{Key: "victim_sex", Label: "Victim Sex", File: "victim_sex.csv", Shape: ShapeWide},
	{Key: "offender_sex", Label: "Offender Sex", File: "offender_sex.csv", Shape: ShapeWide},
}

func init() {
	for _, src := range defaultSources {
		Register(src)
	}
}

// DefaultSources returns a copy of the built-in source set.
// Tests use this to restore the registry after replacing it.
func DefaultSources() []Source {
	out := make([]Source, len(defaultSources))
	copy(out, defaultSources)
	return out
}
