package res

import _ "embed"

// BasicShader is the combined vertex/fragment shader used when no shader file
// is configured.
//
//go:embed "shaders/basic.shader"
var BasicShader []byte

// BasicShaderName identifies the embedded shader in logs.
const BasicShaderName = "embedded:shaders/basic.shader"
