package memory

import (
	"time"

	"ai-course-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// ScopeRepository caches learn-block -> (course, module) scope lookups
// for the mentor pipeline, so repeated questions against the same block
// skip the join query. Entries expire so lifecycle changes are picked up.
type ScopeRepository struct {
	cache *cache.Cache
}

func NewScopeRepository() *ScopeRepository {
	// Short TTL: a course can be archived while learners keep asking.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &ScopeRepository{
		cache: c,
	}
}

func (r *ScopeRepository) Save(scope *entity.LearnBlockScope) {
	r.cache.Set(scope.LearnBlockId.String(), scope, cache.DefaultExpiration)
}

func (r *ScopeRepository) Get(learnBlockId string) (*entity.LearnBlockScope, bool) {
	if x, found := r.cache.Get(learnBlockId); found {
		return x.(*entity.LearnBlockScope), true
	}
	return nil, false
}

func (r *ScopeRepository) Delete(learnBlockId string) {
	r.cache.Delete(learnBlockId)
}
