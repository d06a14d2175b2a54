package buildinfo

var (
	Version    = "v0.3.0"
	CommitHash = "unknown"
)

type Info struct {
	About      string `json:"about,omitempty"`
	Service    string `json:"service,omitempty"`
	Version    string `json:"version,omitempty"`
	CommitHash string `json:"commit_hash,omitempty"`
}

func GetBuildInfo() Info {
	return Info{
		About:      "https://github.com/frankyi-gh/aplcheck",
		Service:    "aplcheck",
		Version:    Version,
		CommitHash: CommitHash,
	}
}
