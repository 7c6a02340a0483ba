package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/projection"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/random"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/share"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/store"
)

var (
	loadConfigFunc        = config.Load
	loadConfigLenientFunc = config.LoadConfigLenient
	openStoreFunc         = store.Open
)

// ProbeSeed fixes the picker of profile probes so doctor output is stable.
const ProbeSeed uint64 = 1

// CheckConfig validates that the configuration can be loaded and parsed.
// When strict loading fails but lenient loading succeeds, CheckConfig returns
// a FAIL result together with the leniently loaded config so downstream
// checks still run.
func CheckConfig(path string) ([]Result, *config.Config) {
	cfg, source, err := loadConfigFunc(path)
	if err == nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, source),
		}}, cfg
	}

	failed := Result{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameConfig,
		Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
		Recommendation: messages.DoctorConfigLoadRecommend,
	}
	if !errors.Is(err, config.ErrConfigValidation) || source == config.TemplateSource {
		return []Result{failed}, nil
	}

	lenient, lenientErr := loadConfigLenientFunc(source)
	if lenientErr != nil {
		failed.Message = fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, lenientErr)
		return []Result{failed}, nil
	}
	failed.Recommendation = messages.DoctorConfigLoadLenientRecommend
	return []Result{failed}, lenient
}

// CheckCatalog loads the configured catalog.
func CheckCatalog(cfg *config.Config) ([]Result, *catalog.Catalog) {
	path, err := cfg.CatalogPath()
	if err == nil {
		var cat *catalog.Catalog
		cat, err = catalog.Open(cfg.Catalog.Version, path)
		if err == nil {
			return []Result{{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameCatalog,
				Message:   fmt.Sprintf(messages.DoctorCatalogLoadedFmt, cat.Version, cat.Len(), shortDigest(cat.Digest)),
			}}, cat
		}
	}

	recommendation := messages.DoctorCatalogFileRecommend
	if errors.Is(err, catalog.ErrUnknownVersion) {
		recommendation = fmt.Sprintf(messages.DoctorCatalogVersionRecommendFmt, catalog.Versions())
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameCatalog,
		Message:        fmt.Sprintf(messages.DoctorCatalogLoadFailedFmt, err),
		Recommendation: recommendation,
	}}, nil
}

// CheckStore opens the saved build database and decodes every saved build
// against cat. A missing database is fine and is not created. cat may be nil,
// which skips decoding.
func CheckStore(ctx context.Context, cfg *config.Config, cat *catalog.Catalog) []Result {
	path, err := cfg.StorePath()
	if err != nil {
		return []Result{storeFailure(err)}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameStore,
			Message:   fmt.Sprintf(messages.DoctorStoreMissingFmt, path),
		}}
	}

	s, err := openStoreFunc(path)
	if err != nil {
		return []Result{storeFailure(err)}
	}
	defer func() { _ = s.Close() }()

	saved, err := s.List(ctx)
	if err != nil {
		return []Result{storeFailure(err)}
	}

	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameStore,
		Message:   fmt.Sprintf(messages.DoctorStoreOpenedFmt, len(saved), path),
	}}
	if cat == nil {
		return results
	}
	for _, b := range saved {
		if _, err := share.Decode(b.Query, cat); err != nil {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameStore,
				Message:        fmt.Sprintf(messages.DoctorStoreStaleBuildFmt, b.Name, err),
				Recommendation: fmt.Sprintf(messages.DoctorStoreStaleBuildRecommendFmt, b.CatalogVersion),
			})
		}
	}
	return results
}

// CheckProfiles runs the assembler once for the top-level settings and once
// per profile. Exhausting the retry limit is a warning since another seed may
// still succeed; anything else is a failure.
func CheckProfiles(cfg *config.Config, cat *catalog.Catalog) []Result {
	scopes := append([]string{""}, cfg.ProfileNames()...)
	seed := ProbeSeed
	results := make([]Result, 0, len(scopes))
	for _, name := range scopes {
		label := name
		if label == "" {
			label = messages.DoctorProfileDefaultLabel
		}

		attempts := 0
		plan, err := projection.Build(cfg, cat, projection.Overrides{Profile: name, Seed: &seed})
		if err == nil {
			assembler := plan.Assembler.WithObserver(func(a random.Attempt) { attempts = a.Number })
			_, err = assembler.Assemble(plan.Candidates)
		}

		switch {
		case err == nil:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameProfiles,
				Message:   fmt.Sprintf(messages.DoctorProfileAssembledFmt, label, attempts),
			})
		case errors.Is(err, random.ErrExhausted):
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameProfiles,
				Message:        fmt.Sprintf(messages.DoctorProfileExhaustedFmt, label, err),
				Recommendation: messages.DoctorProfileExhaustedRecommend,
			})
		default:
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameProfiles,
				Message:        fmt.Sprintf(messages.DoctorProfileFailedFmt, label, err),
				Recommendation: messages.DoctorProfileFailedRecommend,
			})
		}
	}
	return results
}

func storeFailure(err error) Result {
	return Result{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameStore,
		Message:        fmt.Sprintf(messages.DoctorStoreFailedFmt, err),
		Recommendation: messages.DoctorStoreRecommend,
	}
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
