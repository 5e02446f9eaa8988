// Package paths resolves the filesystem locations dotconf works with.
//
// The tool configuration lives under the XDG config home
// (github.com/adrg/xdg), typically ~/.config/dotconf/config.yaml, and can be
// relocated with DOTCONF_CONFIG_DIR. The environment store itself is
// configured by the user; this package only derives the pending path used
// when that store does not exist yet:
//
//	paths.PendingPath("/srv/app/.env", "")      // /srv/app/.env.new
//	paths.ResolveRelative("/srv/app", ".env")   // /srv/app/.env
package paths
