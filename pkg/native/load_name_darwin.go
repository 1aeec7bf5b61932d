package native

const defaultLibraryName = "libiup.dylib"
