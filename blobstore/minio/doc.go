// Package minio provides a Store implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This
// package uses the official MinIO Go client library, so it also works with
// other S3-compatible systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "clusters/")
//	err = blobstore.SaveSnapshot(ctx, store, "run-001.cure", result, persistence.CompressionZSTD)
package minio
