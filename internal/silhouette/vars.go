package silhouette

var (
	Debug   = false // set to true for verbose debug output (per-sweep stats, progress)
	Workers = 0     // rasterization workers; <= 0 means runtime.NumCPU()
	Potrace = ""    // overrides the potrace executable when non-empty
)
