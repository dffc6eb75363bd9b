package services

import (
	"github.com/ciberseguria/sgsi-express/internal/database"
)

// QuestionStore abstracts read access to the seeded question catalog.
type QuestionStore interface {
	// ListQuestions returns the catalog ordered by domain, then display order.
	ListQuestions() ([]database.Question, error)
}

type CatalogService struct {
	store QuestionStore
}

// DomainGroup is a run of questions sharing one domain label, in catalog
// order. Grouping preserves the order in which domains first appear.
type DomainGroup struct {
	Domain    string
	Questions []database.Question
}

func NewCatalogService(store QuestionStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) List() ([]database.Question, error) {
	return s.store.ListQuestions()
}

func (s *CatalogService) ListGrouped() ([]DomainGroup, error) {
	questions, err := s.store.ListQuestions()
	if err != nil {
		return nil, err
	}
	return GroupByDomain(questions), nil
}

// GroupByDomain buckets questions by their domain label, keeping both domain
// and question order stable.
func GroupByDomain(questions []database.Question) []DomainGroup {
	index := map[string]int{}
	groups := []DomainGroup{}
	for _, q := range questions {
		i, ok := index[q.Domain]
		if !ok {
			i = len(groups)
			index[q.Domain] = i
			groups = append(groups, DomainGroup{Domain: q.Domain})
		}
		groups[i].Questions = append(groups[i].Questions, q)
	}
	return groups
}
