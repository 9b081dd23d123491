package types

// SkillFrequency is one aggregated skill with the number of job-posting
// mentions attributed to it. Frequencies for related spellings of the same
// skill are merged into a single entry during normalization.
type SkillFrequency struct {
	Name      string `json:"name"`
	Frequency int    `json:"frequency"`
}

// SkillNames projects a frequency list onto its ordered skill names.
func SkillNames(freqs []SkillFrequency) []string {
	names := make([]string, 0, len(freqs))
	for _, f := range freqs {
		names = append(names, f.Name)
	}
	return names
}
