// Command atari-bundle inspects and creates application bundles: zip
// archives whose bundle.ini manifest tells the launcher how to start them.
package main
