package metadata

import "encoding/xml"

// Metadata is the fixed metadata record carried by every module and
// collection. Role lists hold person keys that index People; duplicates
// are kept in document order.
type Metadata struct {
	Repository  string            `json:"repository" yaml:"repository"`
	URL         string            `json:"url" yaml:"url"`
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Version     string            `json:"version" yaml:"version"`
	Created     string            `json:"created" yaml:"created"`
	Revised     string            `json:"revised" yaml:"revised"`
	LicenseURL  string            `json:"license_url" yaml:"license_url"`
	Keywords    []string          `json:"keywords" yaml:"keywords"`
	Subjects    []string          `json:"subjects" yaml:"subjects"`
	Abstract    string            `json:"abstract" yaml:"abstract"`
	Language    string            `json:"language" yaml:"language"`
	People      map[string]Person `json:"people" yaml:"people"`
	Authors     []string          `json:"authors" yaml:"authors"`
	Maintainers []string          `json:"maintainers" yaml:"maintainers"`
	Licensors   []string          `json:"licensors" yaml:"licensors"`
}

// Person describes an actor. Organizations carry only Fullname and Email.
type Person struct {
	Firstname string `json:"firstname" yaml:"firstname"`
	Surname   string `json:"surname" yaml:"surname"`
	Fullname  string `json:"fullname" yaml:"fullname"`
	Email     string `json:"email" yaml:"email"`
}

// metadataBlock maps the MDML children of a metadata element.
//
// XML Structure:
//
//	<metadata mdml-version="0.5">
//	  <md:content-id>m42304</md:content-id>
//	  <md:title>...</md:title>
//	  <md:actors><md:person userid="...">...</md:person></md:actors>
//	  <md:roles><md:role type="author">userid userid</md:role></md:roles>
//	  <md:license url="..."/>
//	  <md:keywordlist><md:keyword>...</md:keyword></md:keywordlist>
//	  <md:abstract>text with <emphasis>markup</emphasis></md:abstract>
//	</metadata>
type metadataBlock struct {
	Repository  string        `xml:"http://cnx.rice.edu/mdml repository"`
	ContentURL  string        `xml:"http://cnx.rice.edu/mdml content-url"`
	ContentID   string        `xml:"http://cnx.rice.edu/mdml content-id"`
	Title       string        `xml:"http://cnx.rice.edu/mdml title"`
	Version     string        `xml:"http://cnx.rice.edu/mdml version"`
	Created     string        `xml:"http://cnx.rice.edu/mdml created"`
	Revised     string        `xml:"http://cnx.rice.edu/mdml revised"`
	Actors      actorsElement `xml:"http://cnx.rice.edu/mdml actors"`
	Roles       rolesElement  `xml:"http://cnx.rice.edu/mdml roles"`
	License     licenseElem   `xml:"http://cnx.rice.edu/mdml license"`
	KeywordList keywordList   `xml:"http://cnx.rice.edu/mdml keywordlist"`
	SubjectList subjectList   `xml:"http://cnx.rice.edu/mdml subjectlist"`
	Abstract    mixedText     `xml:"http://cnx.rice.edu/mdml abstract"`
	Language    string        `xml:"http://cnx.rice.edu/mdml language"`
}

type actorsElement struct {
	Actors []actorElement `xml:",any"`
}

// actorElement is either md:person or md:organization.
type actorElement struct {
	XMLName   xml.Name
	UserID    string `xml:"userid,attr"`
	Firstname string `xml:"http://cnx.rice.edu/mdml firstname"`
	Surname   string `xml:"http://cnx.rice.edu/mdml surname"`
	Fullname  string `xml:"http://cnx.rice.edu/mdml fullname"`
	Email     string `xml:"http://cnx.rice.edu/mdml email"`
}

type rolesElement struct {
	Roles []roleElement `xml:"http://cnx.rice.edu/mdml role"`
}

type roleElement struct {
	Type  string `xml:"type,attr"`
	Users string `xml:",chardata"`
}

type licenseElem struct {
	URL string `xml:"url,attr"`
}

type keywordList struct {
	Keywords []string `xml:"http://cnx.rice.edu/mdml keyword"`
}

type subjectList struct {
	Subjects []string `xml:"http://cnx.rice.edu/mdml subject"`
}
