//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework AppKit
#import <Cocoa/Cocoa.h>
#import <AppKit/AppKit.h>

void activateApp() {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// ActivateApp brings the application to the front so a window opened from
// the menu bar receives keyboard focus
func ActivateApp() {
	C.activateApp()
}
