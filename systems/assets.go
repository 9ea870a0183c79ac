package systems

import (
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/automoto/recycle-catch/assets"
)

// Global asset state, loaded once and shared across scenes
var (
	globalAssets   *assets.Registry
	assetsInitOnce sync.Once
)

// InitAssets starts decoding the default manifest from dir in the background.
// Scenes draw placeholders until each image lands.
func InitAssets(dir string) *assets.Registry {
	assetsInitOnce.Do(func() {
		var fsys fs.FS
		if dir != "" {
			if _, err := os.Stat(dir); err != nil {
				log.Printf("Warning: asset directory unavailable, using placeholder art: %v", err)
			} else {
				fsys = os.DirFS(dir)
			}
		}
		globalAssets = assets.NewRegistry(fsys, assets.DefaultManifest, nil)
		if fsys == nil {
			return
		}
		go func() {
			<-globalAssets.LoadAll()
			log.Printf("Assets loaded: %d/%d", globalAssets.LoadedCount(), globalAssets.TotalCount())
		}()
	})
	return globalAssets
}

// Assets returns the shared registry, starting an empty one if InitAssets
// was never called.
func Assets() *assets.Registry {
	return InitAssets("")
}
