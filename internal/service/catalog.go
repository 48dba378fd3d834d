package service

import (
	"sort"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Catalog serves read-only listings of the seeded reference data.
type Catalog struct {
	store *store.Store
}

func NewCatalog(st *store.Store) *Catalog {
	return &Catalog{store: st}
}

// Courses lists every offered course, ordered by code.
func (c *Catalog) Courses() ([]types.Course, error) {
	courses := []types.Course{}
	err := c.store.View(func(d *store.Data) error {
		for _, course := range d.Courses {
			// Copy the slices, not just the struct: the snapshot must
			// not alias store memory once the lock is released.
			snapshot := *course
			snapshot.Enrolled = append([]string{}, course.Enrolled...)
			snapshot.Waitlist = append([]types.WaitlistEntry{}, course.Waitlist...)
			courses = append(courses, snapshot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Code < courses[j].Code })
	return courses, nil
}
