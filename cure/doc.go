// Package cure implements the CURE (Clustering Using REpresentatives)
// agglomerative merge engine.
//
// CURE approximates each cluster by a small set of well-scattered
// representative points shrunk toward the cluster mean. This lets the
// algorithm find clusters of arbitrary, non-spherical shape while staying
// robust to outliers: the compression factor interpolates between
// single-link chaining (0) and centroid clustering (1).
//
// The engine starts with one cluster per input point and repeatedly merges
// the globally closest pair, where the inter-cluster distance is the minimum
// pairwise distance between representative sets. A proximity index answers
// nearest-cluster queries and a merge queue orders the live clusters by
// their cached closest distance; both are repaired incrementally after each
// merge instead of rescanning all pairs.
//
// Most users should go through the root curego package, which adds input
// validation, options, and logging on top of this engine.
package cure
