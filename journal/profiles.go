// journal/profiles.go
package journal

import (
	"time"

	"github.com/wzgold/tradelog/pkg/id"
	"github.com/wzgold/tradelog/store"
)

// AddProfile validates and persists a new profile. A blank id is filled in
// with a fresh ULID.
func (j *Journal) AddProfile(p *Profile) error {
	if err := j.requireUser(); err != nil {
		return err
	}
	if blankName(p.Name) {
		return invalid("name", "must not be empty")
	}
	if !p.Currency.Valid() {
		return invalid("currency", "must be USD or IDR")
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
	return j.st.Add(store.Profiles, p.ID, "", doc)
}

// UpdateProfile replaces an existing profile record.
func (j *Journal) UpdateProfile(p *Profile) error {
	if err := j.requireUser(); err != nil {
		return err
	}
	if blankName(p.Name) {
		return invalid("name", "must not be empty")
	}
	if !p.Currency.Valid() {
		return invalid("currency", "must be USD or IDR")
	}

	doc, err := marshal(p)
	if err != nil {
		return err
	}
	return j.st.Put(store.Profiles, p.ID, "", doc)
}

// GetProfile returns the profile or nil when it does not exist.
func (j *Journal) GetProfile(profileID string) (*Profile, error) {
	doc, found, err := j.st.Get(store.Profiles, profileID)
	if err != nil {
		return nil, err
	}
	return decodeOne[Profile](doc, found)
}

// Profiles returns every profile.
func (j *Journal) Profiles() ([]Profile, error) {
	docs, err := j.st.GetAll(store.Profiles)
	if err != nil {
		return nil, err
	}
	return decodeAll[Profile](docs)
}
