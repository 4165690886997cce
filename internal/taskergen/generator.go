package taskergen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// TaskerProfile is one fully sampled tasker ready for SQL emission.
type TaskerProfile struct {
	ID                  int
	FirstName           string
	MiddleName          string
	LastName            string
	Email               string
	HireDate            time.Time
	AddressLine1        string
	AddressLine2        string
	City                string
	StateProvince       string
	PostalCode          string
	Country             string
	Timezone            string
	Status              string
	ExternalJobTitle    string
	SubdomainIDs        []int
	HoursAvailable      float64
	HourlyRate          float64
	Languages           []string
	LanguageProficiency map[string]string
	InternalRoles       string
}

// Generator samples tasker profiles deterministically from a seed.
type Generator struct {
	rng        *rand.Rand
	usedEmails map[string]bool
	profiles   []DomainProfile
}

func NewGenerator(seed int64) *Generator {
	// Expand profiles by domain weight once so each draw is a flat choice.
	var weighted []DomainProfile
	for _, p := range domainProfiles {
		w := domainWeights[p.Domain]
		if w < 1 {
			w = 1
		}
		for i := 0; i < w; i++ {
			weighted = append(weighted, p)
		}
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		usedEmails: make(map[string]bool),
		profiles:   weighted,
	}
}

// Generate produces count taskers with consecutive ids starting at startID.
func (g *Generator) Generate(startID, count int) []TaskerProfile {
	taskers := make([]TaskerProfile, 0, count)
	for id := startID; id < startID+count; id++ {
		taskers = append(taskers, g.one(id))
	}
	return taskers
}

func (g *Generator) one(id int) TaskerProfile {
	firstPool := firstNamesMale
	if g.rng.Float64() < 0.45 {
		firstPool = firstNamesFemale
	}
	first := firstPool[g.rng.Intn(len(firstPool))]
	last := lastNames[g.rng.Intn(len(lastNames))]

	middle := ""
	if g.rng.Float64() < 0.3 {
		middle = middleInitials[g.rng.Intn(len(middleInitials))]
	}

	email := g.uniqueEmail(first, last)

	loc := locations[g.rng.Intn(len(locations))]

	addr1 := fmt.Sprintf("%d %s", 1+g.rng.Intn(999), streetNames[g.rng.Intn(len(streetNames))])
	addr2 := ""
	if g.rng.Float64() < 0.25 {
		addr2 = fmt.Sprintf("Apt %d", 1+g.rng.Intn(50))
	}

	hireDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, g.rng.Intn(1001))

	status := "active"
	if g.rng.Float64() < 0.08 {
		status = "inactive"
	}

	profile := g.profiles[g.rng.Intn(len(g.profiles))]

	hours := 0.0
	if status == "active" {
		hoursPool := []float64{10, 15, 20, 25, 30, 35, 40}
		hours = hoursPool[g.rng.Intn(len(hoursPool))]
	}
	rate := float64(int((25+g.rng.Float64()*70)*100)) / 100

	languages, proficiency := g.languagesFor(loc.Country)

	return TaskerProfile{
		ID:                  id,
		FirstName:           first,
		MiddleName:          middle,
		LastName:            last,
		Email:               email,
		HireDate:            hireDate,
		AddressLine1:        addr1,
		AddressLine2:        addr2,
		City:                loc.City,
		StateProvince:       loc.State,
		PostalCode:          loc.Postal,
		Country:             loc.Country,
		Timezone:            loc.Timezone,
		Status:              status,
		ExternalJobTitle:    profile.JobTitle,
		SubdomainIDs:        profile.SubdomainIDs,
		HoursAvailable:      hours,
		HourlyRate:          rate,
		Languages:           languages,
		LanguageProficiency: proficiency,
		InternalRoles:       internalRolesOptions[g.rng.Intn(len(internalRolesOptions))],
	}
}

func emailLocal(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "", " ", "", "'", "").Replace(name))
}

func (g *Generator) uniqueEmail(first, last string) string {
	base := emailLocal(first) + "." + emailLocal(last)
	email := base + "@" + emailDomains[g.rng.Intn(len(emailDomains))]
	for suffix := 2; g.usedEmails[email]; suffix++ {
		email = fmt.Sprintf("%s%d@%s", base, suffix, emailDomains[g.rng.Intn(len(emailDomains))])
	}
	g.usedEmails[email] = true
	return email
}

// languagesFor builds the language set for a country, guaranteeing English
// and occasionally adding one extra language.
func (g *Generator) languagesFor(country string) ([]string, map[string]string) {
	base, ok := countryLanguages[country]
	if !ok {
		base = []LanguageSkill{{"English", "fluent"}}
	}
	skills := make([]LanguageSkill, len(base))
	copy(skills, base)

	hasEnglish := false
	for _, s := range skills {
		if s.Language == "English" {
			hasEnglish = true
		}
	}
	if !hasEnglish {
		skills = append(skills, LanguageSkill{"English", "fluent"})
	}

	if g.rng.Float64() < 0.2 {
		extra := extraLanguages[g.rng.Intn(len(extraLanguages))]
		dup := false
		for _, s := range skills {
			if s.Language == extra.Language {
				dup = true
			}
		}
		if !dup {
			skills = append(skills, extra)
		}
	}

	languages := make([]string, len(skills))
	proficiency := make(map[string]string, len(skills))
	for i, s := range skills {
		languages[i] = s.Language
		proficiency[s.Language] = s.Proficiency
	}
	return languages, proficiency
}
