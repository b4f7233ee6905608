// Package probe implements the core page diagnostic: fetch recent posts
// from a public Facebook page and classify each post by how many images
// it carries.
//
// The probe package coordinates between the feed client, the post
// classifier and the diagnostic output.
//
// Architecture:
//
// The Prober struct is the main component that:
//   - Walks a page's feed through a PostSource up to a bounded depth
//   - Projects each post down to the reported fields
//   - Buckets posts into multi-image, single-image and no-image counters
//   - Contains any feed fault inside the per-page result
//
// Usage:
//
//	cfg := config.DefaultConfig()
//	prober := probe.New(cfg)
//
//	result := prober.ProbePage("PhuketTimeNews")
//	if !result.Success {
//	    // result.Error describes the fault
//	}
//
// Classification:
//
// Each examined post lands in exactly one bucket, decided by the first
// matching rule: more than one entry in its image list counts as
// multi-image, exactly one entry counts as single-image, a bare image
// URL with no list also counts as single-image, and everything else
// counts as no-image. The multi-image bucket is the signal this probe
// exists to detect.
package probe
