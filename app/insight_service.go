package app

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"voyage/domain/snapshot"
	"voyage/internal/analysis"
	"voyage/internal/errors"
	"voyage/ports"

	"golang.org/x/sync/errgroup"
)

// DefaultTopNames is the truncation applied to the surname frequency table
// shown on the dashboard.
const DefaultTopNames = 20

// InsightReport bundles every analysis table computed from one dataset load.
type InsightReport struct {
	Locator        string    `json:"locator"`
	PassengerCount int       `json:"passenger_count"`
	GeneratedAt    time.Time `json:"generated_at"`

	Demographics     []analysis.DemographicRow      `json:"demographics"`
	FamilyGroups     []analysis.FamilyGroupRow      `json:"family_groups"`
	SurnameFamilies  []analysis.SurnameFamilyRow    `json:"surname_families"`
	LastNames        []analysis.NameCount           `json:"last_names"`
	AgeDivision      []analysis.AgeDivisionRow      `json:"age_division"`
	DivisionSurvival []analysis.DivisionSurvivalRow `json:"division_survival"`

	ClassIndependence analysis.IndependenceResult `json:"class_independence"`
	SexIndependence   analysis.IndependenceResult `json:"sex_independence"`
}

// InsightService orchestrates one dataset load plus every aggregation. It
// holds no state between calls: each Report reloads and recomputes from
// scratch.
type InsightService struct {
	source    ports.PassengerSource
	snapshots ports.SnapshotRepository // optional, nil disables archiving
	topNames  int
}

// NewInsightService creates the analysis orchestrator. snapshots may be nil.
func NewInsightService(source ports.PassengerSource, snapshots ports.SnapshotRepository) *InsightService {
	return &InsightService{
		source:    source,
		snapshots: snapshots,
		topNames:  DefaultTopNames,
	}
}

// Report loads the dataset and computes every analysis table. The
// aggregations are independent single-pass functions, so they fan out under
// an errgroup; each one alone stays synchronous per the core contract.
func (s *InsightService) Report(ctx context.Context) (*InsightReport, error) {
	records, err := s.source.Read()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.EmptyInput("dataset loaded zero passengers")
	}

	report := &InsightReport{
		Locator:        s.source.Locator(),
		PassengerCount: len(records),
		GeneratedAt:    time.Now().UTC(),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.Demographics = analysis.SurvivalDemographics(records)
		return nil
	})
	g.Go(func() error {
		report.FamilyGroups = analysis.FamilyGroups(records)
		report.SurnameFamilies = analysis.SurnameFamilies(records)
		return nil
	})
	g.Go(func() error {
		report.LastNames = analysis.LastNames(records, s.topNames)
		return nil
	})
	g.Go(func() error {
		report.AgeDivision = analysis.DetermineAgeDivision(records)
		report.DivisionSurvival = analysis.AgeDivisionSurvival(report.AgeDivision)
		return nil
	})
	g.Go(func() error {
		var err error
		report.ClassIndependence, err = analysis.SurvivalIndependence(records, analysis.FactorClass)
		if err != nil {
			return err
		}
		report.SexIndependence, err = analysis.SurvivalIndependence(records, analysis.FactorSex)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.archive(ctx, report)
	return report, nil
}

// archive stores each computed table when a snapshot repository is wired.
// Archive failures are logged, never surfaced: the archive is an audit
// trail, not part of the analysis contract.
func (s *InsightService) archive(ctx context.Context, report *InsightReport) {
	if s.snapshots == nil {
		return
	}

	tables := []struct {
		name string
		rows int
		data interface{}
	}{
		{"survival_demographics", len(report.Demographics), report.Demographics},
		{"family_groups", len(report.FamilyGroups), report.FamilyGroups},
		{"surname_families", len(report.SurnameFamilies), report.SurnameFamilies},
		{"last_names", len(report.LastNames), report.LastNames},
		{"age_division", len(report.AgeDivision), report.AgeDivision},
		{"division_survival", len(report.DivisionSurvival), report.DivisionSurvival},
	}

	for _, table := range tables {
		payload, err := json.Marshal(table.data)
		if err != nil {
			log.Printf("[InsightService] failed to marshal %s snapshot: %v", table.name, err)
			continue
		}
		snap := snapshot.New(report.Locator, table.name, table.rows, payload)
		if err := s.snapshots.Save(ctx, snap); err != nil {
			log.Printf("[InsightService] failed to archive %s snapshot: %v", table.name, err)
		}
	}
}
