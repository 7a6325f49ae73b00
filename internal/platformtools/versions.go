package platformtools

type SupportedHostOS string

const (
	OSDarwin  SupportedHostOS = "darwin"
	OSLinux   SupportedHostOS = "linux"
	OSWindows SupportedHostOS = "windows"
)

type SupportedVersion string

const (
	Version_30_0_4 SupportedVersion = "30.0.4"
	Version_33_0_3 SupportedVersion = "33.0.3"

	DefaultVersion = Version_33_0_3
)

type VersionInfo struct {
	Release     SupportedVersion
	TemplateURL string
	CheckSum    string
}

var Downloads = map[SupportedVersion]map[SupportedHostOS]VersionInfo{
	Version_30_0_4: {
		OSDarwin: VersionInfo{
			Version_30_0_4,
			"%v/fbad467867e935dce68a0296b00e6d1e76f15b15.platform-tools_r30.0.4-darwin.zip",
			"e0db2bdc784c41847f854d6608e91597ebc3cef66686f647125f5a046068a890"},
		OSLinux: VersionInfo{
			Version_30_0_4,
			"%v/platform-tools_r30.0.4-linux.zip",
			"5be24ed897c7e061ba800bfa7b9ebb4b0f8958cc062f4b2202701e02f2725891"},
		OSWindows: VersionInfo{
			Version_30_0_4,
			"%v/platform-tools_r30.0.4-windows.zip",
			"413182fff6c5957911e231b9e97e6be4fc6a539035e3dfb580b5c54bd5950fee"},
	},
	Version_33_0_3: {
		OSDarwin: VersionInfo{
			Version_33_0_3,
			"%v/platform-tools_r33.0.3-darwin.zip",
			"84acbbd2b2ccef159ae3e6f83137e44ad18388ff3cc66bb057c87d761744e595"},
		OSLinux: VersionInfo{
			Version_33_0_3,
			"%v/platform-tools_r33.0.3-linux.zip",
			"ab885c20f1a9cb528eb145b9208f53540efa3d26258ac3ce4363570a0846f8f7"},
		OSWindows: VersionInfo{
			Version_33_0_3,
			"%v/platform-tools_r33.0.3-windows.zip",
			"1e59afd40a74c5c0eab0a9fad3f0faf8a674267106e0b19921be9f67081808c2"},
	},
}
