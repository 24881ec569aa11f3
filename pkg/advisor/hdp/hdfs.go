// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hdp

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/NVIDIA/stack-advisor/pkg/configuration"
	"github.com/NVIDIA/stack-advisor/pkg/recommender"
	"github.com/NVIDIA/stack-advisor/pkg/validator"
)

// Configuration namespaces.
const (
	HDFSSite = "hdfs-site"
	CoreSite = "core-site"
)

// Property keys read by the HDFS rules.
const (
	PropEncryptDataTransfer    = "dfs.encrypt.data.transfer"
	PropSecurityAuthentication = "hadoop.security.authentication"
	PropSecurityAuthorization  = "hadoop.security.authorization"
	PropHTTPPolicy             = "dfs.http.policy"
	PropDatanodeAddress        = "dfs.datanode.address"
	PropDatanodeHTTPAddress    = "dfs.datanode.http.address"
	PropDatanodeHTTPSAddress   = "dfs.datanode.https.address"
	PropDataTransferProtection = "dfs.data.transfer.protection"
)

// dfs.http.policy values.
const (
	HTTPOnly     = "HTTP_ONLY"
	HTTPSOnly    = "HTTPS_ONLY"
	HTTPAndHTTPS = "HTTP_AND_HTTPS"
)

var (
	validHTTPPolicies          = []string{HTTPOnly, HTTPSOnly, HTTPAndHTTPS}
	validTransferProtections   = []string{"authentication", "integrity", "privacy"}
	defaultTransferProtection  = validTransferProtections[0]
	httpsOnlyAddressProperties = []string{PropDatanodeAddress, PropDatanodeHTTPSAddress}
	httpAddressProperties      = []string{PropDatanodeAddress, PropDatanodeHTTPAddress}
)

// ValidateHDFSConfigurations validates hdfs-site and reports against that namespace.
func ValidateHDFSConfigurations(properties configuration.Properties, configurations configuration.Configurations) []validator.Item {
	return validator.ToProblems(ValidateHDFS(properties, configurations), HDFSSite)
}

// ValidateHDFS checks that a kerberized cluster runs its datanodes on ports
// consistent with dfs.http.policy and that dfs.data.transfer.protection is
// only used, and only with a valid value, under HTTPS_ONLY.
//
// Nothing is checked when wire encryption is on or when core-site does not
// enable both kerberos authentication and authorization.
func ValidateHDFS(hdfsSite configuration.Properties, configurations configuration.Configurations) []validator.PropertyItem {
	items := make([]validator.PropertyItem, 0)

	if hdfsSite.GetOrDefault(PropEncryptDataTransfer, "false") == "true" {
		return items
	}
	if !securityEnabled(configurations.Site(CoreSite)) {
		return items
	}

	privilegedDataPort := privilegedAddress(hdfsSite, PropDatanodeAddress)
	privilegedHTTPPort := privilegedAddress(hdfsSite, PropDatanodeHTTPAddress)
	privilegedHTTPSPort := privilegedAddress(hdfsSite, PropDatanodeHTTPSAddress)
	policy := hdfsSite.GetOrDefault(PropHTTPPolicy, HTTPOnly)
	protection, protectionSet := hdfsSite.Get(PropDataTransferProtection)

	if !slices.Contains(validHTTPPolicies, policy) {
		items = append(items, validator.PropertyItem{
			Property: PropHTTPPolicy,
			Finding: validator.WarnItem(fmt.Sprintf("Invalid property value: %s. Valid values are %s",
				policy, listString(validHTTPPolicies))),
		})
	}

	var (
		addressProps []string
		message      string
	)
	if policy == HTTPSOnly {
		if privilegedDataPort || privilegedHTTPSPort {
			addressProps = httpsOnlyAddressProperties
			message = fmt.Sprintf("You set up datanode to use some non-secure ports, but %s is set to %s. "+
				"If you want to run Datanode under non-root user in a secure cluster, "+
				"you should set all these properties %s "+
				"to use non-secure ports (if property %s does not exist, "+
				"just add it). You may also set up property %s ('%s' is a good default value). "+
				"Also, set up WebHDFS with SSL as "+
				"described in manual in order to be able to "+
				"use HTTPS.",
				PropHTTPPolicy, policy, listString(addressProps),
				PropDatanodeHTTPSAddress, PropDataTransferProtection, defaultTransferProtection)
		}
	} else {
		// any other value, including an invalid one; https address is not checked here
		if !privilegedDataPort || !privilegedHTTPPort {
			addressProps = httpAddressProperties
			message = fmt.Sprintf("You have set up datanode to use some non-secure ports, but %s is set to %s. "+
				"In a secure cluster, Datanode forbids using non-secure ports "+
				"if %s is not set to %s. "+
				"Please make sure that properties %s use secure ports.",
				PropHTTPPolicy, policy, PropHTTPPolicy, HTTPSOnly, listString(addressProps))
		}
	}
	for _, prop := range addressProps {
		items = append(items, validator.PropertyItem{Property: prop, Finding: validator.WarnItem(message)})
	}

	if protectionSet {
		switch {
		case policy == HTTPOnly || policy == HTTPAndHTTPS:
			items = append(items, validator.PropertyItem{
				Property: PropDataTransferProtection,
				Finding: validator.WarnItem(fmt.Sprintf("%s property can not be used when %s is set to any "+
					"value other then %s. Tip: When %s property is not defined, it defaults to %s",
					PropDataTransferProtection, PropHTTPPolicy, HTTPSOnly, PropHTTPPolicy, HTTPOnly)),
			})
		case !slices.Contains(validTransferProtections, protection):
			items = append(items, validator.PropertyItem{
				Property: PropDataTransferProtection,
				Finding: validator.WarnItem(fmt.Sprintf("Invalid property value: %s. Valid values are %s.",
					protection, listString(validTransferProtections))),
			})
		}
	}

	slog.Debug("hdfs-site evaluated",
		"policy", policy,
		"privileged_data_port", privilegedDataPort,
		"privileged_http_port", privilegedHTTPPort,
		"privileged_https_port", privilegedHTTPSPort,
		"items", len(items))

	return items
}

// securityEnabled reports kerberos authentication with authorization on.
// A missing key counts as disabled.
func securityEnabled(coreSite configuration.Properties) bool {
	auth, ok := coreSite.Get(PropSecurityAuthentication)
	if !ok {
		return false
	}
	authz, ok := coreSite.Get(PropSecurityAuthorization)
	if !ok {
		return false
	}
	return auth == "kerberos" && authz == "true"
}

// privilegedAddress reports whether the address stored under key binds a
// privileged port. Absent keys and addresses without a parseable port are not
// privileged.
func privilegedAddress(props configuration.Properties, key string) bool {
	addr, ok := props.Get(key)
	if !ok {
		return false
	}
	port, err := configuration.GetPort(addr)
	if err != nil {
		slog.Debug("treating address without port as non-privileged",
			"property", key,
			"value", addr,
			"error", err)
		return false
	}
	return configuration.IsSecurePort(port)
}

// listString renders values as ['a', 'b'].
func listString(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// RecommendHDFSConfigurations makes sure hdfs-site exists and carries an
// explicit dfs.http.policy. Values already set are left alone.
func RecommendHDFSConfigurations(configurations configuration.Configurations, _ recommender.ClusterData) {
	hdfsSite := configurations.Ensure(HDFSSite)
	if !hdfsSite.Has(PropHTTPPolicy) {
		hdfsSite[PropHTTPPolicy] = HTTPOnly
	}
}
