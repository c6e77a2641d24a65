// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

// GL constants used by gpufilter. Values match the Khronos headers so
// backends convert with a plain type conversion.
const (
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	TRIANGLE_STRIP Enum = 0x0005

	CULL_FACE  Enum = 0x0B44
	DEPTH_TEST Enum = 0x0B71

	UNPACK_ALIGNMENT Enum = 0x0CF5
	PACK_ALIGNMENT   Enum = 0x0D05

	UNSIGNED_BYTE Enum = 0x1401
	FLOAT         Enum = 0x1406

	RGB  Enum = 0x1907
	RGBA Enum = 0x1908
	BGRA Enum = 0x80E1

	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	NEAREST            Enum = 0x2600
	CLAMP_TO_EDGE      Enum = 0x812F

	TEXTURE0  Enum = 0x84C0
	TEXTURE31 Enum = 0x84DF

	ARRAY_BUFFER Enum = 0x8892
	STATIC_DRAW  Enum = 0x88E4

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	FRAMEBUFFER                       Enum = 0x8D40
	COLOR_ATTACHMENT0                 Enum = 0x8CE0
	FRAMEBUFFER_COMPLETE              Enum = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT Enum = 0x8CD6
	FRAMEBUFFER_UNSUPPORTED           Enum = 0x8CDD

	FALSE = 0
	TRUE  = 1
)

var enumNames = map[Enum]string{
	NO_ERROR:                          "NO_ERROR",
	INVALID_ENUM:                      "INVALID_ENUM",
	INVALID_VALUE:                     "INVALID_VALUE",
	INVALID_OPERATION:                 "INVALID_OPERATION",
	OUT_OF_MEMORY:                     "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION:     "INVALID_FRAMEBUFFER_OPERATION",
	TRIANGLE_STRIP:                    "TRIANGLE_STRIP",
	CULL_FACE:                         "CULL_FACE",
	DEPTH_TEST:                        "DEPTH_TEST",
	UNPACK_ALIGNMENT:                  "UNPACK_ALIGNMENT",
	PACK_ALIGNMENT:                    "PACK_ALIGNMENT",
	UNSIGNED_BYTE:                     "UNSIGNED_BYTE",
	FLOAT:                             "FLOAT",
	RGB:                               "RGB",
	RGBA:                              "RGBA",
	BGRA:                              "BGRA",
	TEXTURE_2D:                        "TEXTURE_2D",
	TEXTURE_MAG_FILTER:                "TEXTURE_MAG_FILTER",
	TEXTURE_MIN_FILTER:                "TEXTURE_MIN_FILTER",
	TEXTURE_WRAP_S:                    "TEXTURE_WRAP_S",
	TEXTURE_WRAP_T:                    "TEXTURE_WRAP_T",
	NEAREST:                           "NEAREST",
	CLAMP_TO_EDGE:                     "CLAMP_TO_EDGE",
	ARRAY_BUFFER:                      "ARRAY_BUFFER",
	STATIC_DRAW:                       "STATIC_DRAW",
	FRAGMENT_SHADER:                   "FRAGMENT_SHADER",
	VERTEX_SHADER:                     "VERTEX_SHADER",
	COMPILE_STATUS:                    "COMPILE_STATUS",
	LINK_STATUS:                       "LINK_STATUS",
	INFO_LOG_LENGTH:                   "INFO_LOG_LENGTH",
	FRAMEBUFFER:                       "FRAMEBUFFER",
	COLOR_ATTACHMENT0:                 "COLOR_ATTACHMENT0",
	FRAMEBUFFER_COMPLETE:              "FRAMEBUFFER_COMPLETE",
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT: "FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	FRAMEBUFFER_UNSUPPORTED:           "FRAMEBUFFER_UNSUPPORTED",
}
