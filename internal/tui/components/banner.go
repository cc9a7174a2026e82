package components

import "strings"

var bannerLines = []string{
	`             _       _                     _   `,
	`  _ __  _ __(_)_ __ | |_ ___  ___ ___  _  _| |_ `,
	` | '_ \| '__| | '_ \| __/ __|/ __/ _ \| || | __|`,
	` | |_) | |  | | | | | |_\__ \ (_| (_) | || | |_ `,
	` | .__/|_|  |_|_| |_|\__|___/\___\___/ \__,_|\__|`,
	` |_|                                            `,
}

// RenderBanner renders the printscout banner in the accent color.
func RenderBanner(s Styles) string {
	return s.Title.Render(strings.Join(bannerLines, "\n"))
}
