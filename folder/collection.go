package folder

// ByURI maps the folders by URI. When two folders share a URI the last one wins.
func ByURI(folders []*Folder) map[URI]*Folder {
	output := make(map[URI]*Folder, len(folders))
	for _, f := range folders {
		if f == nil {
			continue
		}
		output[f.URI] = f
	}
	return output
}

// URIStrings returns the string form of each folder URI
func URIStrings(folders []*Folder) []string {
	output := make([]string, 0, len(folders))
	for _, f := range folders {
		if f == nil {
			continue
		}
		output = append(output, f.URI.String())
	}
	return output
}
