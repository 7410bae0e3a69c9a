/*
Package appicon converts a single vector icon source into the full set of
platform-specific raster icon assets needed to package a mobile or desktop
application: the Android adaptive icon layers together with the notification
icons, the Linux desktop icons and the macOS app icon set.

The package provides a command line interface, supporting various flags for
the different target platforms. To check the supported commands type:

	$ appicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/appicon"
	)

	func main() {
		g := &appicon.Generator{
			// Initialize struct variables
		}

		if err := g.Run(); err != nil {
			fmt.Printf("Error generating the icon assets: %s", err.Error())
		}
	}
*/
package appicon
