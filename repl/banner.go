/*
File: repl/banner.go
*/
package repl

// BannerText is the banner line printed when an interactive session
// starts, on a terminal or over a served connection alike.
const BannerText = `Nhotyp 0.1.0`

// StartupNotice follows BannerText at session start.
const StartupNotice = `Type "copyright" or "license" for more information.`

const copyrightText = `Copyright Nhotyp contributors.
This is free software; see the source for copying conditions.
`

const licenseText = `Nhotyp is distributed under the MIT license.
See the LICENSE file in the source distribution for the full text.
`
