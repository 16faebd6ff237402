// Package config loads funhtml project configuration.
//
// The configuration lives at the project root in funhtml.json,
// funhtml.yaml or funhtml.yml (checked in that order). Every field is
// optional; a missing file yields the defaults. Unknown keys are an error.
//
// # Configuration File Structure
//
//	name: handbook
//	lang: en
//	title: Team Handbook
//	pretty: false
//	logLevel: info
//	serve:
//	  host: localhost
//	  port: 3000
//	  liveReload: true
//	publish:
//	  bucket: handbook-site
//	  prefix: docs/
//	  region: eu-west-1
//	  endpoint: ""
//	  cacheControl: max-age=300
//
// FUNHTML_HOST, FUNHTML_PORT, FUNHTML_BUCKET and FUNHTML_LOG_LEVEL
// override the corresponding fields.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Serving on", cfg.Address())
package config
