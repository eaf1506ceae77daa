// Package fedskew simulates "Same Features, Different Label" (SFDL) skew
// for federated-learning experiments.
//
// Given a labeled tabular dataset, fedskew clusters rows in feature space
// and routes whole clusters — not random rows — to simulated clients.
// Because clusters are formed from feature proximity while their label mix
// is uneven, every client sees comparable feature distributions but a
// different label-given-feature distribution.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	schema, _ := dataset.NewSchema(
//	    dataset.Column{Name: "x1", Kind: dataset.KindFloat},
//	    dataset.Column{Name: "x2", Kind: dataset.KindFloat},
//	    dataset.Column{Name: "label", Kind: dataset.KindString},
//	)
//	ds, _ := dataset.ReadCSV(f, schema)
//
//	// One-step: k resolved internally via the silhouette scan.
//	split, _ := fedskew.Distribute(ctx, ds, []string{"x1", "x2"}, 4)
//
//	// Two-step: resolve k explicitly, then distribute.
//	k, _ := fedskew.FindOptimalK(ctx, ds, []string{"x1", "x2"}, fedskew.WithMaxK(8))
//	split, _ = fedskew.Distribute(ctx, ds, []string{"x1", "x2"}, 4, fedskew.WithK(k))
//
//	for id, client := range split.Clients {
//	    fmt.Println(id, client.NumRows())
//	}
//
// # Determinism
//
// Clustering is seeded per call (DefaultSeed, override with WithSeed);
// identical inputs always produce identical splits. There is no
// process-global RNG state.
//
// # Shipping splits
//
// The export package writes each client's dataset as an optionally
// compressed CSV blob plus a JSON manifest through a blobstore (local
// filesystem, in-memory, MinIO, or S3).
package fedskew
