/*
Package texload decodes DDS and KTX 1.1 texture containers into a Texture:
pixel format, dimensions and a zero-copy view of the level 0 texel bytes,
ready to hand to a graphics backend.

DDS files must carry a four-character code (S3TC DXT1/3/5 or ATC variants).
KTX files are validated against a Catalog of known GL internal formats.
Only mip level 0 is surfaced; texture arrays, cubemaps, 3D textures and
big-endian KTX files are rejected.

Decoding is synchronous and never copies texel data. Load and friends wrap a
Source (file, HTTP, in-memory) and call the decoders once bytes arrive.
*/
package texload
