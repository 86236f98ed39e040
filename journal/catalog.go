// journal/catalog.go
//
// Pairs, templates and custom fields: the per-profile catalogue entities
// that shape how trades are entered.
package journal

import (
	"strings"
	"time"

	"github.com/wzgold/tradelog/pkg/id"
	"github.com/wzgold/tradelog/store"
)

// AddPair adds an instrument to the profile's catalogue. Names are
// upper-cased and must be unique within the profile.
func (j *Journal) AddPair(p *Pair) error {
	if p.ProfileID == "" {
		return invalid("profileId", "must reference a profile")
	}
	if blankName(p.Name) {
		return invalid("name", "must not be empty")
	}
	p.Name = strings.ToUpper(strings.TrimSpace(p.Name))

	existing, err := j.Pairs(p.ProfileID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.Name == p.Name {
			return invalid("name", "pair already exists")
		}
	}

	if p.ID == "" {
		p.ID = id.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	doc, err := marshal(p)
	if err != nil {
		return err
	}
	return j.st.Add(store.Pairs, p.ID, p.ProfileID, doc)
}

// Pairs returns the profile's instrument catalogue.
func (j *Journal) Pairs(profileID string) ([]Pair, error) {
	docs, err := j.st.GetAllByIndex(store.Pairs, profileID)
	if err != nil {
		return nil, err
	}
	return decodeAll[Pair](docs)
}

// DeletePair removes an instrument. Trades already recorded against it keep
// their pair name.
func (j *Journal) DeletePair(pairID string) error {
	return j.st.Remove(store.Pairs, pairID)
}

// AddTemplate persists a trade template.
func (j *Journal) AddTemplate(t *Template) error {
	if err := j.validateTemplate(t); err != nil {
		return err
	}

	if t.ID == "" {
		t.ID = id.New()
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	doc, err := marshal(t)
	if err != nil {
		return err
	}
	return j.st.Add(store.Templates, t.ID, t.ProfileID, doc)
}

// UpdateTemplate replaces an existing template.
func (j *Journal) UpdateTemplate(t *Template) error {
	if err := j.validateTemplate(t); err != nil {
		return err
	}
	t.UpdatedAt = time.Now()

	doc, err := marshal(t)
	if err != nil {
		return err
	}
	return j.st.Put(store.Templates, t.ID, t.ProfileID, doc)
}

func (j *Journal) validateTemplate(t *Template) error {
	if t.ProfileID == "" {
		return invalid("profileId", "must reference a profile")
	}
	if blankName(t.Name) {
		return invalid("name", "must not be empty")
	}
	if t.LotSize < 0 {
		return invalid("lotSize", "must not be negative")
	}
	if t.RiskRewardRatio < 0 {
		return invalid("riskRewardRatio", "must not be negative")
	}
	return nil
}

// Templates returns the profile's trade templates.
func (j *Journal) Templates(profileID string) ([]Template, error) {
	docs, err := j.st.GetAllByIndex(store.Templates, profileID)
	if err != nil {
		return nil, err
	}
	return decodeAll[Template](docs)
}

// DeleteTemplate removes a template.
func (j *Journal) DeleteTemplate(templateID string) error {
	return j.st.Remove(store.Templates, templateID)
}

// AddCustomField declares a new custom field for the profile. Names collide
// case-insensitively: "SESSION" is rejected when "session" exists.
func (j *Journal) AddCustomField(f *CustomField) error {
	if f.ProfileID == "" {
		return invalid("profileId", "must reference a profile")
	}
	if blankName(f.Name) {
		return invalid("name", "must not be empty")
	}
	f.Name = strings.TrimSpace(f.Name)

	existing, err := j.CustomFields(f.ProfileID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, f.Name) {
			return invalid("name", "field already exists")
		}
	}

	if f.ID == "" {
		f.ID = id.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	doc, err := marshal(f)
	if err != nil {
		return err
	}
	return j.st.Add(store.CustomFields, f.ID, f.ProfileID, doc)
}

// CustomFields returns the profile's custom field declarations.
func (j *Journal) CustomFields(profileID string) ([]CustomField, error) {
	docs, err := j.st.GetAllByIndex(store.CustomFields, profileID)
	if err != nil {
		return nil, err
	}
	return decodeAll[CustomField](docs)
}

// DeleteCustomField removes a field declaration. Values already stored in
// trades' CustomData are left in place but stop being meaningful.
func (j *Journal) DeleteCustomField(fieldID string) error {
	return j.st.Remove(store.CustomFields, fieldID)
}
