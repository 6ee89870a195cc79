package eventtime

// Embed the IANA database so resolution does not depend on the host's zoneinfo.
import _ "time/tzdata"
