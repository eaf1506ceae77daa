// Package export ships a split to experiment storage: one CSV blob per
// client, optionally compressed, plus a manifest describing the split.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fedskew"
	"github.com/hupe1980/fedskew/blobstore"
	"github.com/hupe1980/fedskew/codec"
	"github.com/hupe1980/fedskew/dataset"
	"github.com/hupe1980/fedskew/manifest"
)

// Compression selects the blob compression algorithm.
type Compression string

const (
	// CompressionNone stores plain CSV.
	CompressionNone Compression = "none"
	// CompressionZstd stores zstd-framed CSV (better ratio).
	CompressionZstd Compression = "zstd"
	// CompressionLZ4 stores lz4-framed CSV (faster).
	CompressionLZ4 Compression = "lz4"
)

func (c Compression) extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// Exporter writes splits through a BlobStore.
type Exporter struct {
	store       blobstore.BlobStore
	compression Compression
	codec       codec.Codec
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithCompression sets the compression algorithm. Default: none.
func WithCompression(c Compression) Option {
	return func(e *Exporter) {
		e.compression = c
	}
}

// WithCodec sets the manifest codec. Default: codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(e *Exporter) {
		if c != nil {
			e.codec = c
		}
	}
}

// New creates an Exporter over the given store.
func New(store blobstore.BlobStore, optFns ...Option) *Exporter {
	e := &Exporter{
		store:       store,
		compression: CompressionNone,
		codec:       codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(e)
		}
	}
	return e
}

// ClientBlobName returns the blob name for a client's dataset.
func (e *Exporter) ClientBlobName(client int) string {
	return fmt.Sprintf("client-%04d.csv%s", client, e.compression.extension())
}

// Export writes every client dataset and the manifest. Client uploads run
// concurrently; the manifest is written last, so a readable manifest always
// refers to fully uploaded blobs.
func (e *Exporter) Export(ctx context.Context, split *fedskew.Split) error {
	infos := make([]manifest.ClientInfo, split.NumClients())

	g, gctx := errgroup.WithContext(ctx)
	for client := 0; client < split.NumClients(); client++ {
		g.Go(func() error {
			name := e.ClientBlobName(client)

			data, err := e.encode(split.Client(client))
			if err != nil {
				return fmt.Errorf("export: client %d: %w", client, err)
			}
			if err := e.store.Put(gctx, name, data); err != nil {
				return fmt.Errorf("export: client %d: %w", client, err)
			}

			infos[client] = manifest.ClientInfo{
				ID:       client,
				Clusters: split.Partition.Clusters(client),
				RowCount: split.Client(client).NumRows(),
				Path:     name,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	m := &manifest.Manifest{
		CreatedAt:   time.Now().UTC(),
		Compression: string(e.compression),
		Seed:        split.Seed,
		K:           split.K,
		Features:    split.Features,
		NumClients:  split.NumClients(),
		Clients:     infos,
	}
	data, err := manifest.Encode(m, e.codec)
	if err != nil {
		return fmt.Errorf("export: manifest: %w", err)
	}
	if err := e.store.Put(ctx, manifest.FileName, data); err != nil {
		return fmt.Errorf("export: manifest: %w", err)
	}
	return nil
}

// ReadManifest loads and validates the manifest of a previously exported
// split.
func (e *Exporter) ReadManifest(ctx context.Context) (*manifest.Manifest, error) {
	r, err := e.store.Open(ctx, manifest.FileName)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return manifest.Decode(data)
}

// ReadClient loads one client's dataset back from the store.
func (e *Exporter) ReadClient(ctx context.Context, info manifest.ClientInfo, schema dataset.Schema) (*dataset.Dataset, error) {
	r, err := e.store.Open(ctx, info.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	plain, err := e.decode(data)
	if err != nil {
		return nil, fmt.Errorf("export: client %d: %w", info.ID, err)
	}
	return dataset.ReadCSV(bytes.NewReader(plain), schema)
}

func (e *Exporter) encode(ds *dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer

	switch e.compression {
	case CompressionZstd:
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, err
		}
		if err := ds.WriteCSV(zw); err != nil {
			zw.Close()
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	case CompressionLZ4:
		lw := lz4.NewWriter(&buf)
		if err := ds.WriteCSV(lw); err != nil {
			lw.Close()
			return nil, err
		}
		if err := lw.Close(); err != nil {
			return nil, err
		}
	default:
		if err := ds.WriteCSV(&buf); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func (e *Exporter) decode(data []byte) ([]byte, error) {
	switch e.compression {
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		var out bytes.Buffer
		if _, err := io.Copy(&out, lz4.NewReader(bytes.NewReader(data))); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	default:
		return data, nil
	}
}
