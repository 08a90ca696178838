// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("clusters/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = blobstore.SaveSnapshot(ctx, store, "run-001.cure", result, persistence.CompressionZSTD)
//
// # Features
//
//   - Multipart uploads for large snapshots
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
