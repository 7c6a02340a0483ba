package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

// ExportJSONL writes every saved build to w as zstd-compressed JSON lines and
// returns the number of builds written.
func (s *Store) ExportJSONL(ctx context.Context, w io.Writer) (int, error) {
	builds, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return 0, fmt.Errorf(messages.StoreExportFmt, err)
	}
	bw := bufio.NewWriter(enc)
	for _, b := range builds {
		line, err := json.Marshal(b)
		if err != nil {
			_ = enc.Close()
			return 0, fmt.Errorf(messages.StoreExportFmt, err)
		}
		if _, err := bw.Write(line); err != nil {
			_ = enc.Close()
			return 0, fmt.Errorf(messages.StoreExportFmt, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = enc.Close()
			return 0, fmt.Errorf(messages.StoreExportFmt, err)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return 0, fmt.Errorf(messages.StoreExportFmt, err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf(messages.StoreExportFmt, err)
	}
	return len(builds), nil
}

// ImportJSONL reads an ExportJSONL stream and saves every build in it,
// replacing builds with the same name. It returns the number of builds saved.
func (s *Store) ImportJSONL(ctx context.Context, r io.Reader) (int, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf(messages.StoreImportFmt, 0, err)
	}
	defer dec.Close()

	scanner := bufio.NewScanner(dec)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line, saved := 0, 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var b SavedBuild
		if err := json.Unmarshal(scanner.Bytes(), &b); err != nil {
			return saved, fmt.Errorf(messages.StoreImportFmt, line, err)
		}
		if _, err := s.Save(ctx, b); err != nil {
			return saved, fmt.Errorf(messages.StoreImportFmt, line, err)
		}
		saved++
	}
	if err := scanner.Err(); err != nil {
		return saved, fmt.Errorf(messages.StoreImportFmt, line, err)
	}
	return saved, nil
}
