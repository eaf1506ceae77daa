// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("splits/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	exp := export.New(store)
//	err = exp.Export(ctx, split)
//
// Credentials come from the default AWS configuration chain (environment,
// shared config, instance role). Listing paginates automatically.
package s3
