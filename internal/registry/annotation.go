// internal/registry/annotation.go
package registry

// Annotation schemas are validated independently of item payloads and take no
// part in asset extraction.

// ValidateAnnotation checks data against the named schema, accumulating
// diagnostics under path. An unknown schema yields a single
// invalid_annotation error.
func ValidateAnnotation(schema, path string, data map[string]interface{}) ErrorList {
	var errs ErrorList
	switch schema {
	case "timeline_v1":
		validateTimelineV1(data, path, &errs)
	case "captions_v1":
		validateCaptionsV1(data, path, &errs)
	default:
		errs.Add(path, KindInvalidAnnotation, "unknown annotation schema %q", schema)
	}
	return errs
}

// timeline_v1: a list of free-form event objects.
func validateTimelineV1(data map[string]interface{}, path string, errs *ErrorList) {
	rejectExtraKeys(data, map[string]bool{"events": true}, path, errs)

	raw, ok := data["events"]
	if !ok || raw == nil {
		return
	}
	events, isList := raw.([]interface{})
	if !isList {
		errs.Add(path+".events", KindWrongType, "expected an array of event objects")
		return
	}
	for i, ev := range events {
		if _, isObj := ev.(map[string]interface{}); !isObj {
			errs.Add(indexPath(path+".events", i), KindWrongType, "expected an object")
		}
	}
}

// captions_v1: a list of {start, end, text} segments.
func validateCaptionsV1(data map[string]interface{}, path string, errs *ErrorList) {
	rejectExtraKeys(data, map[string]bool{"segments": true}, path, errs)

	raw, ok := data["segments"]
	if !ok || raw == nil {
		return
	}
	segments, isList := raw.([]interface{})
	if !isList {
		errs.Add(path+".segments", KindWrongType, "expected an array of caption segments")
		return
	}
	for i, rawSeg := range segments {
		segPath := indexPath(path+".segments", i)
		seg, isObj := rawSeg.(map[string]interface{})
		if !isObj {
			errs.Add(segPath, KindWrongType, "expected an object")
			continue
		}
		rejectExtraKeys(seg, map[string]bool{"start": true, "end": true, "text": true}, segPath, errs)
		for _, key := range []string{"start", "end"} {
			if v, present := seg[key]; present && v != nil {
				if _, isNum := asNumber(v); !isNum {
					errs.Add(segPath+"."+key, KindWrongType, "expected a number")
				}
			}
		}
		if v, present := seg["text"]; present && v != nil {
			if _, isStr := v.(string); !isStr {
				errs.Add(segPath+".text", KindWrongType, "expected a string")
			}
		}
	}
}
