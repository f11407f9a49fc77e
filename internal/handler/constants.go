package handler

const (
	// ContentTypeProperties is served for properties downloads.
	ContentTypeProperties = "text/plain; charset=UTF-8"
	// ContentTypeXML is served for error message XML downloads.
	ContentTypeXML = "application/xml; charset=UTF-8"

	// PropertiesFilename names the properties download attachment.
	PropertiesFilename = "output.properties"
	// XMLFilename names the XML download attachment unless the caller overrides it.
	XMLFilename = "output.xml"
)
