package services

import "os"

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func stringMapToInterfaceMap(stringMap map[string]string) map[string]interface{} {
	interfaceMap := make(map[string]interface{}, len(stringMap))
	for key, value := range stringMap {
		interfaceMap[key] = value
	}
	return interfaceMap
}
