package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=cached_repo_mocks_test.go -package=catalog_test

type catalogRepo interface {
	ListMuscleGroups(ctx context.Context) ([]MuscleGroup, error)
	ListExercises(ctx context.Context, muscleGroupID uuid.UUID) ([]Exercise, error)
	GetExercise(ctx context.Context, id uuid.UUID) (*Exercise, error)
}

// CachedRepo fronts the catalog store with a freecache instance. The
// catalog is global (not per user), so keys carry no user part.
type CachedRepo struct {
	repo      catalogRepo
	cache     *freecache.Cache
	expireSec int
}

func NewCachedRepo(repo catalogRepo, cacheSizeBytes, expireSec int) *CachedRepo {
	return &CachedRepo{
		repo:      repo,
		cache:     freecache.NewCache(cacheSizeBytes),
		expireSec: expireSec,
	}
}

func (c *CachedRepo) ListMuscleGroups(ctx context.Context) ([]MuscleGroup, error) {
	cacheKey := []byte("muscle-groups")
	if cached, err := c.cache.Get(cacheKey); err == nil {
		var groups []MuscleGroup
		if err = json.Unmarshal(cached, &groups); err == nil {
			return groups, nil
		}
		log.Errorf("unmarshal cached muscle groups: %s", err)
	}

	groups, err := c.repo.ListMuscleGroups(ctx)
	if err != nil {
		return nil, err
	}

	c.setCache(cacheKey, groups)
	return groups, nil
}

func (c *CachedRepo) ListExercises(ctx context.Context, muscleGroupID uuid.UUID) ([]Exercise, error) {
	cacheKey := []byte(fmt.Sprintf("exercises::%s", muscleGroupID))
	if cached, err := c.cache.Get(cacheKey); err == nil {
		var exercises []Exercise
		if err = json.Unmarshal(cached, &exercises); err == nil {
			return exercises, nil
		}
		log.Errorf("unmarshal cached exercises for group %s: %s", muscleGroupID, err)
	}

	exercises, err := c.repo.ListExercises(ctx, muscleGroupID)
	if err != nil {
		return nil, err
	}

	c.setCache(cacheKey, exercises)
	return exercises, nil
}

func (c *CachedRepo) GetExercise(ctx context.Context, id uuid.UUID) (*Exercise, error) {
	cacheKey := []byte(fmt.Sprintf("exercise::%s", id))
	if cached, err := c.cache.Get(cacheKey); err == nil {
		var exercise Exercise
		if err = json.Unmarshal(cached, &exercise); err == nil {
			return &exercise, nil
		}
		log.Errorf("unmarshal cached exercise %s: %s", id, err)
	}

	exercise, err := c.repo.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}

	c.setCache(cacheKey, exercise)
	return exercise, nil
}

func (c *CachedRepo) setCache(key []byte, value interface{}) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal catalog cache value for %s: %s", key, err)
		return
	}
	if err := c.cache.Set(key, valueBytes, c.expireSec); err != nil {
		log.Errorf("set catalog cache for %s: %s", key, err)
	}
}
