package fetch

import "testing"

func TestFilenameFor(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"simple_path", "https://host/a/b/photo.jpg", "photo.jpg"},
		{"root_only", "https://host/", "downloaded_file"},
		{"no_path", "https://host", "host"},
		{"trailing_slash", "https://host/dir/", "downloaded_file"},
		{"percent_encoded", "https://host/files/my%20file.txt", "my file.txt"},
		{"query_ignored", "https://images.unsplash.com/photo-1726138400966?q=80&w=3870", "photo-1726138400966"},
		{"deep_path", "https://cdn.host/v1/assets/2023/archive.tar.gz", "archive.tar.gz"},
		{"not_a_url", "just-some-text", "just-some-text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilenameFor(tt.url); got != tt.want {
				t.Errorf("FilenameFor(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
