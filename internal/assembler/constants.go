// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

const (
	targetWeb   = "web"
	nodeFSEmpty = "empty"

	hotDevServerModule = "webpack/hot/dev-server"
	hotClientModule    = "webpack-hot-middleware/client"

	outputFilename          = "[name].[hash].js"
	prodOutputFilename      = "[name].[chunkhash].js"
	prodOutputChunkFilename = "[id].[chunkhash].js"
	prodDevtool             = "source-map"

	htmlOutputFilename = "index.html"
	htmlInject         = "body"

	webpackModule = "webpack"
)

// Entry names.
const (
	EntryApp    = "app"
	EntryVendor = "vendor"
)

// Plugin names as they appear in the generated configuration.
const (
	PluginDefine           = "webpack.DefinePlugin"
	PluginProgressBar      = "ProgressBarPlugin"
	PluginHTML             = "HtmlWebpackPlugin"
	PluginHotModuleReplace = "webpack.HotModuleReplacementPlugin"
	PluginNoErrors         = "webpack.NoErrorsPlugin"
	PluginOccurrenceOrder  = "webpack.optimize.OccurrenceOrderPlugin"
	PluginDedupe           = "webpack.optimize.DedupePlugin"
	PluginUglifyJS         = "webpack.optimize.UglifyJsPlugin"
	PluginCommonsChunk     = "webpack.optimize.CommonsChunkPlugin"
)

// Keys of the globals injected by the define plugin.
const (
	DefineNodeEnv     = "process.env.NODE_ENV"
	DefineDevelopment = "__DEVELOPMENT__"
	DefineProduction  = "__PRODUCTION__"
)

// ResolveExtensions are tried in order when an import omits its extension.
// The leading empty string allows fully specified paths.
var ResolveExtensions = []string{"", ".json", ".js", ".jsx"}

// ModulesDirectories are searched for bare package imports.
var ModulesDirectories = []string{"node_modules"}

// VendorModules make up the vendor bundle, in load order.
var VendorModules = []string{
	"react",
	"react-dom",
	"react-router",
	"react-redux",
	"react-router-redux",
	"redux",
	"history",
	"lodash",
}
