// Package dataset owns the in-memory record tables, the per-category
// partitions and the precomputed analytics snapshots, and keeps them
// consistent across ingestion, deletion and reload.
package dataset

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/honeycarbs/skillviz/internal/domain"
	"github.com/honeycarbs/skillviz/internal/domain/analytics"
	"github.com/honeycarbs/skillviz/internal/domain/ingest"
	"github.com/honeycarbs/skillviz/internal/repository"
	"github.com/honeycarbs/skillviz/pkg/logging"
)

// Option configures Service
type Option func(*config)

type config struct {
	storage           repository.Storage
	log               *logging.Logger
	clock             func() time.Time
	guestLimit        int
	comboMinFrequency int
}

// WithStorage sets the persistence backend
func WithStorage(storage repository.Storage) Option {
	return func(c *config) {
		c.storage = storage
	}
}

// WithLogger sets the logger
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithGuestLimit caps how many records the guest view exposes
func WithGuestLimit(limit int) Option {
	return func(c *config) {
		c.guestLimit = limit
	}
}

// WithComboMinFrequency sets the pair-ranking cutoff
func WithComboMinFrequency(min int) Option {
	return func(c *config) {
		c.comboMinFrequency = min
	}
}

// Service is the dataset store. All reads come from precomputed
// snapshots; every mutation refreshes them synchronously before it
// returns, so readers never observe stale aggregates.
type Service struct {
	storage           repository.Storage
	log               *logging.Logger
	clock             func() time.Time
	guestLimit        int
	comboMinFrequency int

	mu         sync.RWMutex
	main       []domain.JobRecord
	partitions map[string][]domain.JobRecord
	cache      *Snapshot
	guestCache *Snapshot
}

// NewService builds Service from options
func NewService(opts ...Option) (*Service, error) {
	cfg := &config{
		clock:             time.Now,
		guestLimit:        50,
		comboMinFrequency: defaultComboMinFrequency,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.storage == nil {
		return nil, fmt.Errorf("dataset.Service: storage is required")
	}
	if cfg.guestLimit < 0 {
		return nil, fmt.Errorf("dataset.Service: guest limit must not be negative")
	}

	s := &Service{
		storage:           cfg.storage,
		log:               cfg.log,
		clock:             cfg.clock,
		guestLimit:        cfg.guestLimit,
		comboMinFrequency: cfg.comboMinFrequency,
		partitions:        make(map[string][]domain.JobRecord),
	}
	s.refreshLocked()
	return s, nil
}

// Load restores the dataset from storage. An empty full table with
// non-empty partitions is rebuilt from the partitions, so a dataset
// survives a lost or cleared main file.
func (s *Service) Load(ctx context.Context) error {
	main, err := s.storage.LoadMain(ctx)
	if err != nil {
		return fmt.Errorf("load main table: %w", err)
	}
	partitions, err := s.storage.LoadCategories(ctx)
	if err != nil {
		return fmt.Errorf("load partitions: %w", err)
	}
	if partitions == nil {
		partitions = make(map[string][]domain.JobRecord)
	}

	if len(main) == 0 && len(partitions) > 0 {
		main = flatten(partitions)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.main = main
	s.partitions = partitions
	s.refreshLocked()

	if s.log != nil {
		s.log.Info("dataset loaded",
			"records", len(s.main),
			"categories", len(s.partitions))
	}
	return nil
}

// Ingest validates, normalizes and deduplicates one upload batch, then
// merges it into the named category. With replace set, the category's
// previous records are discarded first and the batch is deduplicated
// against the remaining categories only.
func (s *Service) Ingest(ctx context.Context, category string, raw []map[string]any, replace bool) (domain.IngestStats, error) {
	batchCategory := ingest.NormalizeCategory(category)

	records, err := ingest.NormalizeBatch(raw, category, s.clock())
	if err != nil {
		return domain.IngestStats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if replace {
		s.dropCategoryLocked(batchCategory)
	}

	unique := ingest.Dedupe(records, s.main)

	for _, rec := range unique {
		s.partitions[rec.Category] = append(s.partitions[rec.Category], rec)
	}
	s.main = append(s.main, unique...)
	s.refreshLocked()
	s.persistLocked(ctx)

	stats := domain.IngestStats{
		TotalRecords:      len(s.main),
		NewRecords:        len(unique),
		DuplicatesRemoved: len(records) - len(unique),
		Category:          batchCategory,
	}

	if s.log != nil {
		s.log.Info("batch ingested",
			"category", stats.Category,
			"new", stats.NewRecords,
			"duplicates", stats.DuplicatesRemoved,
			"total", stats.TotalRecords)
	}
	return stats, nil
}

// DeleteCategory removes one category and rebuilds the full table from
// the remaining partitions
func (s *Service) DeleteCategory(ctx context.Context, category string) error {
	name := ingest.NormalizeCategory(category)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partitions[name]; !ok {
		// deleting an unknown category is a no-op, not a failure
		if s.log != nil {
			s.log.Debug("delete of unknown category ignored", "category", name)
		}
		return nil
	}

	s.dropCategoryLocked(name)
	s.refreshLocked()
	s.persistLocked(ctx)

	if s.log != nil {
		s.log.Info("category deleted", "category", name, "remaining", len(s.main))
	}
	return nil
}

// Clear wipes the dataset and the persisted state
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.main = nil
	s.partitions = make(map[string][]domain.JobRecord)
	s.refreshLocked()

	if err := s.storage.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}

	if s.log != nil {
		s.log.Info("dataset cleared")
	}
	return nil
}

// All returns a copy of the full record table
func (s *Service) All() []domain.JobRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.JobRecord(nil), s.main...)
}

// ByCategory returns a copy of one category's records
func (s *Service) ByCategory(category string) []domain.JobRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.JobRecord(nil), s.partitions[ingest.NormalizeCategory(category)]...)
}

// Categories returns the known category names sorted alphabetically
func (s *Service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.partitions))
	for name := range s.partitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalRecords returns the full table size
func (s *Service) TotalRecords() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.main)
}

// GuestRecords returns the capped record subset guests may see
func (s *Service) GuestRecords() []domain.JobRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.JobRecord(nil), s.guestSliceLocked()...)
}

// Snapshot returns the current full-view analytics snapshot
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache
}

// GuestSnapshot returns the analytics snapshot of the guest subset
func (s *Service) GuestSnapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guestCache
}

// SkillDetail resolves the full analytics bundle for one skill,
// cache-first with an on-demand fallback for skills outside the
// precomputed top slice.
func (s *Service) SkillDetail(skill string) analytics.SkillDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if detail, ok := s.cache.DetailedSkills[skill]; ok {
		return detail
	}
	return analytics.SkillDetailFor(s.main, skill)
}

// SkillSeniorityBreakdown resolves per-tier uptake of one skill
func (s *Service) SkillSeniorityBreakdown(skill string) []analytics.SkillSeniorityStat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.SkillSeniorityBreakdown(s.main, skill)
}

// SkillSalaryByLevel resolves salary stats per required proficiency level
func (s *Service) SkillSalaryByLevel(skill string) []analytics.LevelSalary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.SkillSalaryByLevel(s.main, skill)
}

// SkillTrend resolves the monthly demand history of one skill
func (s *Service) SkillTrend(skill string) []analytics.TrendPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.SkillTrend(s.main, skill)
}

// Regression fits salary against one predictor over the full table
func (s *Service) Regression(predictor, targetSkill string) analytics.RegressionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.Regression(s.main, predictor, targetSkill)
}

// Metadata describes the current dataset state
func (s *Service) Metadata() repository.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metadataLocked()
}

func (s *Service) metadataLocked() repository.Metadata {
	names := make([]string, 0, len(s.partitions))
	for name := range s.partitions {
		names = append(names, name)
	}
	sort.Strings(names)

	return repository.Metadata{
		TotalRecords:    len(s.main),
		CategoriesCount: len(s.partitions),
		Categories:      names,
		LastUpdated:     s.clock().UTC(),
	}
}

// dropCategoryLocked removes one partition and rebuilds the full table
// from what remains
func (s *Service) dropCategoryLocked(category string) {
	if _, ok := s.partitions[category]; !ok {
		return
	}
	delete(s.partitions, category)
	s.main = flatten(s.partitions)
}

// refreshLocked rebuilds both snapshots
func (s *Service) refreshLocked() {
	now := s.clock()
	s.cache = buildSnapshot(s.main, s.comboMinFrequency, now)
	s.guestCache = buildSnapshot(s.guestSliceLocked(), s.comboMinFrequency, now)
}

func (s *Service) guestSliceLocked() []domain.JobRecord {
	if len(s.main) <= s.guestLimit {
		return s.main
	}
	return s.main[:s.guestLimit]
}

// persistLocked writes the dataset out best-effort. A storage failure
// must not lose the in-memory state, so it is logged and swallowed.
func (s *Service) persistLocked(ctx context.Context) {
	if err := s.storage.SaveMain(ctx, s.main); err != nil {
		if s.log != nil {
			s.log.Warn("persist main table failed", "error", err)
		}
		return
	}
	if err := s.storage.SaveCategories(ctx, s.partitions); err != nil {
		if s.log != nil {
			s.log.Warn("persist partitions failed", "error", err)
		}
		return
	}
	if err := s.storage.SaveMetadata(ctx, s.metadataLocked()); err != nil {
		if s.log != nil {
			s.log.Warn("persist metadata failed", "error", err)
		}
	}
}

// flatten concatenates partitions in sorted category order so rebuilds
// are deterministic
func flatten(partitions map[string][]domain.JobRecord) []domain.JobRecord {
	names := make([]string, 0, len(partitions))
	for name := range partitions {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []domain.JobRecord
	for _, name := range names {
		out = append(out, partitions[name]...)
	}
	return out
}
