// Package data 嵌入默认配置文件
// //go:embed 只能嵌入当前包目录及其子目录的文件，因此声明放在 data/ 目录内，
// 各个可执行程序通过 embedded.Init(data.FS) 共享同一份配置。
package data

import "embed"

//go:embed *.yaml
var FS embed.FS
