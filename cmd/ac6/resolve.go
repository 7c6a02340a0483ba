package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/share"
)

// resolveBuild decodes arg as a share query or, when it has no '=', as the
// name of a saved build. Queries recorded against another embedded catalog
// version decode against that version.
func resolveBuild(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, arg string) (assembly.Build, error) {
	query := arg
	if !strings.Contains(arg, "=") {
		st, err := openStore(cfg)
		if err != nil {
			return assembly.Build{}, err
		}
		defer func() { _ = st.Close() }()
		saved, err := st.Get(ctx, arg)
		if err != nil {
			return assembly.Build{}, fmt.Errorf(messages.ResolveSavedFailedFmt, arg, err)
		}
		query = saved.Query
	}

	target, err := catalogFor(query, cat)
	if err != nil {
		return assembly.Build{}, err
	}
	b, err := share.Decode(query, target)
	if err != nil {
		return assembly.Build{}, fmt.Errorf(messages.ResolveQueryFailedFmt, arg, err)
	}
	return b, nil
}

func catalogFor(query string, cat *catalog.Catalog) (*catalog.Catalog, error) {
	version, err := share.Version(query)
	if err != nil {
		return nil, fmt.Errorf(messages.ResolveQueryFailedFmt, query, err)
	}
	if version == "" || version == cat.Version {
		return cat, nil
	}
	other, err := catalog.Load(version)
	if err != nil {
		return nil, fmt.Errorf(messages.ResolveCatalogFailedFmt, version, query, err)
	}
	return other, nil
}
